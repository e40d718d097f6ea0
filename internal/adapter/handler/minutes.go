package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/errors"
	"github.com/cnmi-csc/busybee/internal/adapter/dto/common"
	"github.com/cnmi-csc/busybee/internal/adapter/dto/minutes"
	"github.com/cnmi-csc/busybee/internal/adapter/presenter"
	"github.com/cnmi-csc/busybee/internal/domain/entities"
	minutesUsecase "github.com/cnmi-csc/busybee/internal/usecase/minutes"
)

const defaultHistoryLimit = 50

// Minutes handles transcript processing HTTP requests
type Minutes struct {
	svc    minutesUsecase.Service
	logger *zap.Logger
}

// NewMinutesHandler creates a new minutes handler
func NewMinutesHandler(svc minutesUsecase.Service, logger *zap.Logger) *Minutes {
	return &Minutes{svc: svc, logger: logger}
}

// Process handles POST /minutes
// @Summary      Generate minutes from a transcript
// @Description  Corrects roster names, analyzes the transcript with the configured model or pattern analysis, renders the document and stores it with the transcript
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Param        request  body      minutes.ProcessRequest   true  "Transcript to process"
// @Success      200      {object}  minutes.ProcessResponse  "Generated document"
// @Failure      400      {object}  map[string]interface{}   "Missing title or transcript, or invalid option"
// @Failure      500      {object}  map[string]interface{}   "Storage failed"
// @Router       /minutes [post]
func (h *Minutes) Process(c echo.Context) error {
	var req minutes.ProcessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.svc.Process(c.Request().Context(), toUsecaseRequest(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToProcessResponse(res))
}

// Preview handles POST /minutes/preview
// @Summary      Preview minutes without storing them
// @Description  Runs the full pipeline and returns markdown and HTML; nothing is written to the output folders
// @Tags         Minutes
// @Accept       json
// @Produce      json
// @Param        request  body      minutes.ProcessRequest   true  "Transcript to preview"
// @Success      200      {object}  minutes.ProcessResponse  "Rendered document"
// @Failure      400      {object}  map[string]interface{}   "Missing title or transcript, or invalid option"
// @Router       /minutes/preview [post]
func (h *Minutes) Preview(c echo.Context) error {
	var req minutes.ProcessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	res, err := h.svc.Preview(c.Request().Context(), toUsecaseRequest(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToProcessResponse(res))
}

// UploadRecording handles POST /recordings
// @Summary      Upload a meeting recording
// @Description  Stores the recording, transcribes it with speaker labels and generates minutes from the transcript
// @Tags         Recordings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file             formData  file    true   "Audio or video file"
// @Param        title            formData  string  true   "Meeting title"
// @Param        meeting_type     formData  string  false  "general, board or case"
// @Param        document_kind    formData  string  false  "minutes, general or case_summary"
// @Param        mode             formData  string  false  "ai or heuristic"
// @Param        normalize_names  formData  bool    false  "Correct roster names"
// @Success      200              {object}  minutes.ProcessResponse  "Generated document and recording"
// @Failure      400              {object}  map[string]interface{}   "Missing file or title"
// @Failure      502              {object}  map[string]interface{}   "Transcription failed"
// @Failure      503              {object}  map[string]interface{}   "Transcription not configured"
// @Router       /recordings [post]
func (h *Minutes) UploadRecording(c echo.Context) error {
	form := minutes.RecordingForm{
		Title:        c.FormValue("title"),
		MeetingType:  c.FormValue("meeting_type"),
		DocumentKind: c.FormValue("document_kind"),
		Mode:         c.FormValue("mode"),
	}
	normalize, err := parseBoolForm(c, "normalize_names")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	form.NormalizeNames = normalize
	if err := c.Validate(&form); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrRecordingRequired())
	}
	file, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("could not open uploaded file"))
	}
	defer file.Close()

	if h.logger != nil {
		h.logger.Info("🎙️ Recording received",
			zap.String("filename", fh.Filename),
			zap.Int64("size", fh.Size),
		)
	}

	res, err := h.svc.ProcessRecording(c.Request().Context(), &minutesUsecase.RecordingRequest{
		Request: minutesUsecase.Request{
			Title:          form.Title,
			MeetingType:    entities.MeetingType(form.MeetingType),
			Kind:           entities.DocumentKind(form.DocumentKind),
			Mode:           minutesUsecase.Mode(form.Mode),
			NormalizeNames: form.NormalizeNames,
		},
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToProcessResponse(res))
}

// Normalize handles POST /names/normalize
// @Summary      Correct roster names
// @Description  Replaces known misspellings of roster members with their canonical names
// @Tags         Names
// @Accept       json
// @Produce      json
// @Param        request  body      minutes.NormalizeRequest   true  "Text to normalize"
// @Success      200      {object}  minutes.NormalizeResponse  "Normalized text"
// @Failure      400      {object}  map[string]interface{}     "Missing text"
// @Router       /names/normalize [post]
func (h *Minutes) Normalize(c echo.Context) error {
	var req minutes.NormalizeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	text, mentions := h.svc.Normalize(req.Text)
	return HandleSuccess(h.logger, c, presenter.ToNormalizeResponse(req.Text, text, mentions))
}

// Classify handles POST /documents/classify
// @Summary      Classify a document
// @Description  Decides whether a written document is an official order or a note
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      minutes.ClassifyRequest   true  "Document to classify"
// @Success      200      {object}  minutes.ClassifyResponse  "Classification"
// @Failure      400      {object}  map[string]interface{}    "Missing text"
// @Router       /documents/classify [post]
func (h *Minutes) Classify(c echo.Context) error {
	var req minutes.ClassifyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	isOrder, folder := h.svc.Classify(req.Title, req.Text)
	return HandleSuccess(h.logger, c, &minutes.ClassifyResponse{IsOrder: isOrder, Folder: string(folder)})
}

// History handles GET /documents/history
// @Summary      List processed documents
// @Description  Returns recently processed documents, newest first
// @Tags         Documents
// @Produce      json
// @Param        limit  query     int                     false  "Maximum entries (1-500)"
// @Success      200    {object}  common.ListResponse     "History entries"
// @Failure      400    {object}  map[string]interface{}  "Invalid limit"
// @Router       /documents/history [get]
func (h *Minutes) History(c echo.Context) error {
	var q minutes.HistoryQuery
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}
	if q.Limit == 0 {
		q.Limit = defaultHistoryLimit
	}

	entries, err := h.svc.History(c.Request().Context(), q.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &common.ListResponse{Data: presenter.ToHistoryResponse(entries), Total: len(entries)})
}

// Documents handles GET /documents
// @Summary      List stored files
// @Description  Lists the files in one output folder, newest first
// @Tags         Documents
// @Produce      json
// @Param        folder  query     string                  true  "recordings, transcripts, notes or official-orders"
// @Success      200     {object}  common.ListResponse     "Stored files"
// @Failure      400     {object}  map[string]interface{}  "Unknown folder"
// @Router       /documents [get]
func (h *Minutes) Documents(c echo.Context) error {
	var q minutes.DocumentsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	files, err := h.svc.Documents(c.Request().Context(), entities.Folder(q.Folder))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &common.ListResponse{Data: presenter.ToStoredFilesResponse(files), Total: len(files)})
}

// Template handles GET /templates/:kind
// @Summary      Get a document template
// @Description  Returns the raw markdown template used for a document kind
// @Tags         Templates
// @Produce      json
// @Param        kind  path      string                     true  "minutes or case_summary"
// @Success      200   {object}  minutes.TemplateResponse   "Template"
// @Failure      400   {object}  map[string]interface{}     "Unknown document kind"
// @Failure      404   {object}  map[string]interface{}     "Template not available"
// @Router       /templates/{kind} [get]
func (h *Minutes) Template(c echo.Context) error {
	kind := entities.DocumentKind(c.Param("kind"))
	body, err := h.svc.Template(c.Request().Context(), kind)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, &minutes.TemplateResponse{Kind: string(kind), Body: body})
}

func toUsecaseRequest(req *minutes.ProcessRequest) *minutesUsecase.Request {
	return &minutesUsecase.Request{
		Title:          req.Title,
		Transcript:     req.Transcript,
		MeetingType:    entities.MeetingType(req.MeetingType),
		Kind:           entities.DocumentKind(req.DocumentKind),
		Mode:           minutesUsecase.Mode(req.Mode),
		NormalizeNames: req.NormalizeNames,
	}
}
