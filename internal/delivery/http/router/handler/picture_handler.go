package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"photodeck/internal/delivery/http/middleware"
	"photodeck/internal/delivery/http/response"
	"photodeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PictureHandler holds dependencies for picture-related handlers.
type PictureHandler struct {
	uc     usecase.PictureUsecase
	logger *slog.Logger
}

// NewPictureHandler is the constructor for PictureHandler, injected by Fx.
func NewPictureHandler(uc usecase.PictureUsecase, logger *slog.Logger) *PictureHandler {
	return &PictureHandler{
		uc:     uc,
		logger: logger,
	}
}

type searchPicturesRequest struct {
	Title                 *string    `query:"title"`
	Description           *string    `query:"description"`
	Width                 *int       `query:"width"`
	Height                *int       `query:"height"`
	ISO                   *string    `query:"iso"`
	CameraModel           *string    `query:"cameraModel"`
	Flash                 *bool      `query:"flash"`
	DelayTimeMilliseconds *float64   `query:"delayTimeMilliseconds"`
	FocusDistance         *string    `query:"focusDistance"`
	ShootingDateFrom      *time.Time `query:"shootingDateFrom"`
	ShootingDateTo        *time.Time `query:"shootingDateTo"`
	SortBy                string     `query:"sortBy"`
	SortOrder             string     `query:"sortOrder"`
	Page                  int        `query:"page"`
	ItemsPerPage          int        `query:"itemsPerPage"`
}

type addPictureRequest struct {
	Title                 string     `form:"title" validate:"required,max=255"`
	Description           *string    `form:"description"`
	Width                 int        `form:"width" validate:"required,gt=0"`
	Height                int        `form:"height" validate:"required,gt=0"`
	ISO                   *string    `form:"iso"`
	CameraModel           *string    `form:"cameraModel"`
	Flash                 *bool      `form:"flash"`
	DelayTimeMilliseconds *float64   `form:"delayTimeMilliseconds"`
	FocusDistance         *string    `form:"focusDistance"`
	ShootingDate          *time.Time `form:"shootingDate"`
}

type ownerResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
	FullName *string   `json:"fullName,omitempty"`
}

type shortPictureResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	PhysicalPath string         `json:"physicalPath"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	ShootingDate *time.Time     `json:"shootingDate,omitempty"`
	Owner        *ownerResponse `json:"owner,omitempty"`
}

type pagedPicturesResponse struct {
	Items        []shortPictureResponse `json:"items"`
	Page         int                    `json:"page"`
	ItemsPerPage int                    `json:"itemsPerPage"`
	PageCount    int                    `json:"pageCount"`
	Total        int64                  `json:"total"`
}

type pictureDetailsResponse struct {
	ID                    uuid.UUID      `json:"id"`
	Title                 string         `json:"title"`
	Description           *string        `json:"description,omitempty"`
	PhysicalPath          string         `json:"physicalPath"`
	Width                 int            `json:"width"`
	Height                int            `json:"height"`
	ISO                   *string        `json:"iso,omitempty"`
	CameraModel           *string        `json:"cameraModel,omitempty"`
	Flash                 *bool          `json:"flash,omitempty"`
	DelayTimeMilliseconds *float64       `json:"delayTimeMilliseconds,omitempty"`
	FocusDistance         *string        `json:"focusDistance,omitempty"`
	Created               time.Time      `json:"created"`
	ShootingDate          *time.Time     `json:"shootingDate,omitempty"`
	Owner                 *ownerResponse `json:"owner,omitempty"`
}

type addPictureResponse struct {
	ID           uuid.UUID `json:"id"`
	PhysicalPath string    `json:"physicalPath"`
}

// Search handles the picture search request.
func (h *PictureHandler) Search(c echo.Context) error {
	var req searchPicturesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	page, err := h.uc.Search(c.Request().Context(), &usecase.SearchPicturesInput{
		Title:                 req.Title,
		Description:           req.Description,
		Width:                 req.Width,
		Height:                req.Height,
		ISO:                   req.ISO,
		CameraModel:           req.CameraModel,
		Flash:                 req.Flash,
		DelayTimeMilliseconds: req.DelayTimeMilliseconds,
		FocusDistance:         req.FocusDistance,
		ShootingDateFrom:      req.ShootingDateFrom,
		ShootingDateTo:        req.ShootingDateTo,
		SortBy:                req.SortBy,
		SortOrder:             req.SortOrder,
		Page:                  req.Page,
		ItemsPerPage:          req.ItemsPerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]shortPictureResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, shortPictureResponse{
			ID:           item.ID,
			Title:        item.Title,
			Description:  item.Description,
			PhysicalPath: item.PhysicalPath,
			Width:        item.Width,
			Height:       item.Height,
			ShootingDate: item.ShootingDate,
			Owner:        toOwnerResponse(item.Owner),
		})
	}

	return response.Success(c, http.StatusOK, pagedPicturesResponse{
		Items:        items,
		Page:         page.Page,
		ItemsPerPage: page.ItemsPerPage,
		PageCount:    page.PageCount,
		Total:        page.Total,
	}, "")
}

// Get handles the picture detail request.
func (h *PictureHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid picture id")
	}

	details, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pictureDetailsResponse{
		ID:                    details.ID,
		Title:                 details.Title,
		Description:           details.Description,
		PhysicalPath:          details.PhysicalPath,
		Width:                 details.Width,
		Height:                details.Height,
		ISO:                   details.ISO,
		CameraModel:           details.CameraModel,
		Flash:                 details.Flash,
		DelayTimeMilliseconds: details.DelayTimeMilliseconds,
		FocusDistance:         details.FocusDistance,
		Created:               details.Created,
		ShootingDate:          details.ShootingDate,
		Owner:                 toOwnerResponse(details.Owner),
	}, "")
}

// Add handles the authenticated multipart picture upload.
func (h *PictureHandler) Add(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addPictureRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid picture input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Picture file is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	output, err := h.uc.Add(c.Request().Context(), &usecase.AddPictureInput{
		Title:                 req.Title,
		Description:           req.Description,
		Width:                 req.Width,
		Height:                req.Height,
		ISO:                   req.ISO,
		CameraModel:           req.CameraModel,
		Flash:                 req.Flash,
		DelayTimeMilliseconds: req.DelayTimeMilliseconds,
		FocusDistance:         req.FocusDistance,
		ShootingDate:          req.ShootingDate,
		FileName:              fileHeader.Filename,
		Data:                  data,
		UserID:                userID,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if !output.Success {
		return response.Failure(c, output.Result)
	}

	return response.Success(c, http.StatusCreated, addPictureResponse{
		ID:           output.ID,
		PhysicalPath: output.PhysicalPath,
	}, "Picture added successfully")
}

func toOwnerResponse(owner *usecase.OwnerSummary) *ownerResponse {
	if owner == nil {
		return nil
	}

	return &ownerResponse{
		ID:       owner.ID,
		UserName: owner.Name,
		Email:    owner.Email,
		FullName: owner.FullName,
	}
}
