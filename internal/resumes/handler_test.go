package resumes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/export"
	"resume-matcher/internal/notify"
	"resume-matcher/internal/report"
	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
)

type plainTextExtractor struct{}

func (plainTextExtractor) ExtractText(data []byte) (string, error) {
	if bytes.Equal(data, []byte("BROKEN")) {
		return "", errors.New("cannot open document")
	}
	return string(data), nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &resumes.Service{
		Repo:      resumes.NewMemoryRepo(),
		Extractor: plainTextExtractor{},
	}
	router := server.NewRouter(server.RouterDeps{
		Config:  config.Config{CORSAllowOrigin: []string{"http://localhost:5173"}},
		Batches: resumes.NewHandler(svc, 0),
		Export:  export.NewHandler(svc),
		Report:  report.NewHandler(svc),
		Notify:  notify.NewHandler(svc, &notify.Service{}),
	})
	return router
}

func uploadBatch(t *testing.T, router *gin.Engine, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		fw, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/batches", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestBatchUploadAndFetch(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadBatch(t, router, map[string]string{
		"alice.pdf": "Name: Alice\nresume_skills: pandas\nEmail: alice@example.com",
		"bob.pdf":   "Name: Bob\nresume_skills: cooking",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		BatchID  string           `json:"batchId"`
		Total    int              `json:"total"`
		Selected []resumes.Record `json:"selected"`
		Rejected []resumes.Record `json:"rejected"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.BatchID == "" {
		t.Fatalf("expected batchId")
	}
	if created.Total != 2 || len(created.Selected) != 1 || len(created.Rejected) != 1 {
		t.Fatalf("unexpected partition: total=%d selected=%d rejected=%d", created.Total, len(created.Selected), len(created.Rejected))
	}
	if created.Selected[0].Title != resumes.TitleDataScientist {
		t.Fatalf("unexpected title %q", created.Selected[0].Title)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+created.BatchID, nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
}

func TestBatchUploadRequiresFiles(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/batches", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestBatchSummaryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadBatch(t, router, map[string]string{
		"a.pdf": "resume_skills: unity",
		"b.pdf": "resume_skills: unknown things",
	})
	var created struct {
		BatchID string `json:"batchId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqSum := httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+created.BatchID+"/summary", nil)
	respSum := httptest.NewRecorder()
	router.ServeHTTP(respSum, reqSum)
	if respSum.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respSum.Code)
	}

	var summary resumes.Summary
	if err := json.NewDecoder(respSum.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Total != 2 || summary.Selected != 1 || summary.Rejected != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.TitleCounts[resumes.TitleGameDesigner] != 1 {
		t.Fatalf("expected one game designer, got %+v", summary.TitleCounts)
	}
}

func TestBatchNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/batches/does-not-exist", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestNotifyWithoutCredentials(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadBatch(t, router, map[string]string{
		"a.pdf": "resume_skills: pandas\nEmail: a@example.com",
	})
	var created struct {
		BatchID string `json:"batchId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqNotify := httptest.NewRequest(http.MethodPost, "/api/v1/batches/"+created.BatchID+"/notify", nil)
	respNotify := httptest.NewRecorder()
	router.ServeHTTP(respNotify, reqNotify)
	if respNotify.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without credentials, got %d", respNotify.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadBatch(t, router, map[string]string{
		"a.pdf": "Name: Ana\nresume_skills: react",
	})
	var created struct {
		BatchID string `json:"batchId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqExp := httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+created.BatchID+"/export?set=selected", nil)
	respExp := httptest.NewRecorder()
	router.ServeHTTP(respExp, reqExp)
	if respExp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", respExp.Code, respExp.Body.String())
	}
	if got := respExp.Header().Get("Content-Disposition"); got != `attachment; filename="selected_candidates.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}

	// All records matched, so the rejected download has nothing to serve.
	reqEmpty := httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+created.BatchID+"/export?set=rejected", nil)
	respEmpty := httptest.NewRecorder()
	router.ServeHTTP(respEmpty, reqEmpty)
	if respEmpty.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty set, got %d", respEmpty.Code)
	}
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadBatch(t, router, map[string]string{
		"a.pdf": "resume_skills: pandas",
		"b.pdf": "resume_skills: something else",
	})
	var created struct {
		BatchID string `json:"batchId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	reqRep := httptest.NewRequest(http.MethodGet, "/api/v1/batches/"+created.BatchID+"/report", nil)
	respRep := httptest.NewRecorder()
	router.ServeHTTP(respRep, reqRep)
	if respRep.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respRep.Code)
	}
	if ct := respRep.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !bytes.Contains(respRep.Body.Bytes(), []byte("echarts")) {
		t.Fatalf("expected an echarts page in the report body")
	}
}
