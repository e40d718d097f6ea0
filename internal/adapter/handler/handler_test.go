package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnmi-csc/busybee/errors"
	"github.com/cnmi-csc/busybee/internal/adapter/dto/minutes"
	"github.com/cnmi-csc/busybee/internal/domain/entities"
	minutesUsecase "github.com/cnmi-csc/busybee/internal/usecase/minutes"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
	"github.com/cnmi-csc/busybee/pkg/config"
	pkgvalidator "github.com/cnmi-csc/busybee/pkg/validator"
)

type fakeService struct {
	lastRequest   *minutesUsecase.Request
	lastRecording *minutesUsecase.RecordingRequest
	recordingBody string
	historyLimit  int64
	err           error
}

func (f *fakeService) result(req *minutesUsecase.Request) *minutesUsecase.Result {
	doc := entities.NewOutputDocument(req.Title, entities.DocumentKindMinutes, "# "+req.Title)
	doc.Source = entities.SourceHeuristic
	doc.Filename = "Regular_Meeting_notes.md"
	analysis := entities.NewAnalysisResult(req.Title)
	analysis.Attendance = []entities.AttendanceRecord{{Name: "Raymond Muna", Present: true}, {Name: "Patrick Fitial"}}
	return &minutesUsecase.Result{
		Document: doc,
		Analysis: analysis,
		Outcome:  minutesUsecase.AnalysisOutcome{Kind: minutesUsecase.OutcomeHeuristic},
	}
}

func (f *fakeService) Process(_ context.Context, req *minutesUsecase.Request) (*minutesUsecase.Result, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result(req), nil
}

func (f *fakeService) Preview(_ context.Context, req *minutesUsecase.Request) (*minutesUsecase.Result, error) {
	f.lastRequest = req
	res := f.result(req)
	res.HTML = "<h1>" + req.Title + "</h1>"
	return res, nil
}

func (f *fakeService) ProcessRecording(_ context.Context, req *minutesUsecase.RecordingRequest) (*minutesUsecase.Result, error) {
	f.lastRecording = req
	data, _ := io.ReadAll(req.Body)
	f.recordingBody = string(data)
	res := f.result(&req.Request)
	res.Recording = entities.NewRecording(req.Title, req.ContentType, int64(len(data)))
	return res, nil
}

func (f *fakeService) Normalize(text string) (string, []names.Mention) {
	return strings.ReplaceAll(text, "Muña", "Muna"), []names.Mention{{Name: "Raymond Muna", Text: "Raymond Muña", Start: 0, End: 13}}
}

func (f *fakeService) Classify(_, text string) (bool, entities.Folder) {
	if strings.Contains(text, "ordered") {
		return true, entities.FolderOfficialOrders
	}
	return false, entities.FolderNotes
}

func (f *fakeService) History(_ context.Context, limit int64) ([]*entities.HistoryEntry, error) {
	f.historyLimit = limit
	return []*entities.HistoryEntry{{Title: "Regular Meeting", Folder: entities.FolderNotes, CreatedAt: time.Now()}}, nil
}

func (f *fakeService) Documents(_ context.Context, folder entities.Folder) ([]*entities.StoredFile, error) {
	return []*entities.StoredFile{{Name: "a.md", Folder: folder}}, nil
}

func (f *fakeService) Template(_ context.Context, kind entities.DocumentKind) (string, error) {
	if kind != entities.DocumentKindMinutes {
		return "", errors.ErrTemplateNotFound(string(kind))
	}
	return "# [MEETING_TITLE]", nil
}

type fakeStorage struct{}

func (fakeStorage) Info(context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{"backend": "minio"}, nil
}

func (fakeStorage) FileURL(_ context.Context, folder entities.Folder, filename string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + string(folder) + "/" + filename + "?sig=1", nil
}

type envelope struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

func newTestServer(svc *fakeService, backend interface{}) *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		LLM:    config.LLMConfig{Provider: config.ProviderNone},
	}
	NewRouter(cfg, NewMinutesHandler(svc, nil), NewStorageHandler(backend, nil), prometheus.NewRegistry()).Setup(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestProcess_Success(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc, nil)

	rec, env := doJSON(t, e, http.MethodPost, "/v1/minutes",
		`{"title":"Regular Meeting","transcript":"Motion carried.","meeting_type":"board","mode":"heuristic","normalize_names":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.Code)
	require.NotNil(t, svc.lastRequest)
	assert.Equal(t, entities.MeetingTypeBoard, svc.lastRequest.MeetingType)
	assert.Equal(t, minutesUsecase.ModeHeuristic, svc.lastRequest.Mode)
	require.NotNil(t, svc.lastRequest.NormalizeNames)
	assert.False(t, *svc.lastRequest.NormalizeNames)

	var data struct {
		Document struct {
			Filename string `json:"filename"`
			Source   string `json:"source"`
		} `json:"document"`
		Outcome struct {
			Kind string `json:"kind"`
		} `json:"outcome"`
		Analysis struct {
			Attendees int `json:"attendees"`
			Present   int `json:"present"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Regular_Meeting_notes.md", data.Document.Filename)
	assert.Equal(t, "heuristic", data.Document.Source)
	assert.Equal(t, "heuristic", data.Outcome.Kind)
	assert.Equal(t, 2, data.Analysis.Attendees)
	assert.Equal(t, 1, data.Analysis.Present)
}

func TestProcess_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.ErrorCode
	}{
		{"missing title", `{"transcript":"text"}`, errors.ErrorCode_TITLE_REQUIRED},
		{"blank title", `{"title":"   ","transcript":"text"}`, errors.ErrorCode_TITLE_REQUIRED},
		{"missing transcript", `{"title":"Meeting"}`, errors.ErrorCode_TRANSCRIPT_REQUIRED},
		{"bad meeting type", `{"title":"Meeting","transcript":"text","meeting_type":"party"}`, errors.ErrorCode_INVALID_MEETING_TYPE},
		{"bad kind", `{"title":"Meeting","transcript":"text","document_kind":"memo"}`, errors.ErrorCode_INVALID_DOCUMENT_KIND},
		{"bad mode", `{"title":"Meeting","transcript":"text","mode":"magic"}`, errors.ErrorCode_INVALID_ARGUMENT},
		{"malformed json", `{"title":`, errors.ErrorCode_INVALID_PAYLOAD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec, env := doJSON(t, newTestServer(svc, nil), http.MethodPost, "/v1/minutes", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, int(tt.code), env.Code)
			assert.Nil(t, svc.lastRequest)
		})
	}
}

func TestProcess_ServiceError(t *testing.T) {
	svc := &fakeService{err: errors.ErrStorageFailed("save document", io.ErrShortWrite)}
	rec, env := doJSON(t, newTestServer(svc, nil), http.MethodPost, "/v1/minutes", `{"title":"Meeting","transcript":"text"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int(errors.ErrorCode_INTEGRATION_STORAGE_FAILED), env.Code)
}

func TestPreview_IncludesHTML(t *testing.T) {
	svc := &fakeService{}
	rec, env := doJSON(t, newTestServer(svc, nil), http.MethodPost, "/v1/minutes/preview", `{"title":"Draft","transcript":"text"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data minutes.ProcessResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotNil(t, data.Document)
	assert.Equal(t, "<h1>Draft</h1>", data.Document.HTML)
}

func TestUploadRecording(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("title", "Regular Meeting"))
	require.NoError(t, w.WriteField("mode", "heuristic"))
	require.NoError(t, w.WriteField("normalize_names", "true"))
	part, err := w.CreateFormFile("file", "meeting.m4a")
	require.NoError(t, err)
	_, err = part.Write([]byte("audio-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/recordings", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, svc.lastRecording)
	assert.Equal(t, "Regular Meeting", svc.lastRecording.Title)
	assert.Equal(t, "meeting.m4a", svc.lastRecording.Filename)
	assert.Equal(t, minutesUsecase.ModeHeuristic, svc.lastRecording.Mode)
	require.NotNil(t, svc.lastRecording.NormalizeNames)
	assert.True(t, *svc.lastRecording.NormalizeNames)
	assert.Equal(t, "audio-bytes", svc.recordingBody)
	assert.Contains(t, rec.Body.String(), `"recording"`)
}

func TestUploadRecording_MissingFile(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("title", "Regular Meeting"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/recordings", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":2005`)
	assert.Nil(t, svc.lastRecording)
}

func TestNormalizeAndClassify(t *testing.T) {
	e := newTestServer(&fakeService{}, nil)

	rec, env := doJSON(t, e, http.MethodPost, "/v1/names/normalize", `{"text":"Raymond Muña spoke."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var norm struct {
		Text     string `json:"text"`
		Changed  bool   `json:"changed"`
		Mentions []struct {
			Name string `json:"name"`
		} `json:"mentions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &norm))
	assert.Equal(t, "Raymond Muna spoke.", norm.Text)
	assert.True(t, norm.Changed)
	require.Len(t, norm.Mentions, 1)
	assert.Equal(t, "Raymond Muna", norm.Mentions[0].Name)

	rec, env = doJSON(t, e, http.MethodPost, "/v1/documents/classify", `{"title":"Order","text":"It is hereby ordered."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_order":true,"folder":"official-orders"}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodPost, "/v1/documents/classify", `{"title":"x","text":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int(errors.ErrorCode_INVALID_ARGUMENT), env.Code)
	assert.Equal(t, "notblank", env.Details["text"])
}

func TestHistory(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/v1/documents/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(defaultHistoryLimit), svc.historyLimit)
	assert.Contains(t, string(env.Data), "Regular Meeting")

	rec, _ = doJSON(t, e, http.MethodGet, "/v1/documents/history?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.historyLimit)

	rec, _ = doJSON(t, e, http.MethodGet, "/v1/documents/history?limit=9999", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocuments(t *testing.T) {
	e := newTestServer(&fakeService{}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/v1/documents?folder=official-orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"folder":"official-orders"`)

	rec, _ = doJSON(t, e, http.MethodGet, "/v1/documents?folder=drafts", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplate(t *testing.T) {
	e := newTestServer(&fakeService{}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/v1/templates/minutes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind":"minutes","body":"# [MEETING_TITLE]"}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodGet, "/v1/templates/case_summary", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int(errors.ErrorCode_TEMPLATE_NOT_FOUND), env.Code)
}

func TestStorageRoutes(t *testing.T) {
	e := newTestServer(&fakeService{}, fakeStorage{})

	rec, env := doJSON(t, e, http.MethodGet, "/v1/storage/info", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"backend":"minio"}`, string(env.Data))

	rec, env = doJSON(t, e, http.MethodGet, "/v1/documents/notes/a.md/url", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "https://files.example.com/notes/a.md?sig=1")

	rec, _ = doJSON(t, e, http.MethodGet, "/v1/documents/drafts/a.md/url", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorageRoutes_LocalBackendHasNoLinks(t *testing.T) {
	e := newTestServer(&fakeService{}, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/v1/documents/notes/a.md/url", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int(errors.ErrorCode_NOT_FOUND), env.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newTestServer(&fakeService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"llm":"none"`)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
