// Package http provides the inbound HTTP adapter built on Echo.
// It translates wire requests into commands and queries, and domain errors
// into HTTP status codes. Response serialization is allow-list based; fields
// not named here, such as password hashes and token internals, never reach
// the wire.
package http

import (
	"errors"
	"net/http"
	"time"

	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/installer"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createInstallerRequest struct {
	Name        string  `json:"name"`
	ContactInfo string  `json:"contact_info"`
	UserID      *string `json:"user_id,omitempty"`
}

type installerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContactInfo string  `json:"contact_info"`
	UserID      *string `json:"user_id,omitempty"`
}

type createOrderRequest struct {
	Address        string `json:"address"`
	AccountNumber  string `json:"account_number"`
	ContactDetails string `json:"contact_details"`
}

type updateOrderRequest struct {
	Address        *string `json:"address,omitempty"`
	AccountNumber  *string `json:"account_number,omitempty"`
	ContactDetails *string `json:"contact_details,omitempty"`
}

type assignInstallerRequest struct {
	InstallerID string `json:"installer_id"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type orderResponse struct {
	ID             string            `json:"id"`
	Address        string            `json:"address"`
	AccountNumber  string            `json:"account_number"`
	ContactDetails string            `json:"contact_details"`
	Status         string            `json:"status"`
	InstallerID    *string           `json:"installer_id,omitempty"`
	CreatedBy      string            `json:"created_by"`
	UpdatedBy      string            `json:"updated_by"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Comments       []commentResponse `json:"comments"`
}

type historyEntryResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	RecordedAt time.Time `json:"recorded_at"`
}

type userResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	InstallerID *string `json:"installer_id,omitempty"`
}

type profileResponse struct {
	User      userResponse       `json:"user"`
	Installer *installerResponse `json:"installer,omitempty"`
}

func orderFromDomain(aggregate *order.Order) orderResponse {
	var installerID *string
	if id := aggregate.InstallerID(); id != nil {
		s := id.String()
		installerID = &s
	}

	return orderResponse{
		ID:             aggregate.ID().String(),
		Address:        aggregate.Address(),
		AccountNumber:  aggregate.AccountNumber(),
		ContactDetails: aggregate.ContactDetails(),
		Status:         aggregate.Status().String(),
		InstallerID:    installerID,
		CreatedBy:      aggregate.CreatedBy().String(),
		UpdatedBy:      aggregate.UpdatedBy().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Comments:       []commentResponse{},
	}
}

func orderFromReadModel(model queries.OrderResponse) orderResponse {
	var installerID *string
	if model.InstallerID != nil {
		s := model.InstallerID.String()
		installerID = &s
	}

	comments := make([]commentResponse, 0, len(model.Comments))
	for _, comment := range model.Comments {
		comments = append(comments, commentFromReadModel(comment))
	}

	return orderResponse{
		ID:             model.ID.String(),
		Address:        model.Address,
		AccountNumber:  model.AccountNumber,
		ContactDetails: model.ContactDetails,
		Status:         model.Status.String(),
		InstallerID:    installerID,
		CreatedBy:      model.CreatedBy.String(),
		UpdatedBy:      model.UpdatedBy.String(),
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
		Comments:       comments,
	}
}

func commentFromReadModel(model queries.CommentResponse) commentResponse {
	return commentResponse{
		ID:        model.ID.String(),
		OrderID:   model.OrderID.String(),
		Text:      model.Text,
		CreatedAt: model.CreatedAt,
	}
}

func commentFromDomain(comment *order.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID().String(),
		OrderID:   comment.OrderID().String(),
		Text:      comment.Text(),
		CreatedAt: comment.CreatedAt(),
	}
}

func installerFromDomain(profile *installer.Installer) installerResponse {
	var userID *string
	if id := profile.UserID(); id != nil {
		s := id.String()
		userID = &s
	}

	return installerResponse{
		ID:          profile.ID().String(),
		Name:        profile.Name(),
		ContactInfo: profile.ContactInfo(),
		UserID:      userID,
	}
}

func installerFromReadModel(model queries.InstallerResponse) installerResponse {
	var userID *string
	if model.UserID != nil {
		s := model.UserID.String()
		userID = &s
	}

	return installerResponse{
		ID:          model.ID.String(),
		Name:        model.Name,
		ContactInfo: model.ContactInfo,
		UserID:      userID,
	}
}

func userFromReadModel(model queries.UserResponse) userResponse {
	var installerID *string
	if model.InstallerID != nil {
		s := model.InstallerID.String()
		installerID = &s
	}

	return userResponse{
		ID:          model.ID.String(),
		Username:    model.Username,
		Role:        model.Role.String(),
		InstallerID: installerID,
	}
}

func historyFromReadModel(model queries.HistoryEntryResponse) historyEntryResponse {
	return historyEntryResponse{
		ID:         model.ID.String(),
		OrderID:    model.OrderID.String(),
		ActorID:    model.ActorID.String(),
		Action:     model.Action.String(),
		Details:    model.Details,
		RecordedAt: model.RecordedAt,
	}
}

// respondError maps domain errors onto the HTTP error taxonomy.
// Unknown errors become 500 without leaking their message to the client.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondErrorCode(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return respondErrorCode(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNotAuthenticated):
		return respondErrorCode(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrPermissionDenied):
		return respondErrorCode(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondErrorCode(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func respondBadRequest(ctx echo.Context, err error) error {
	return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
}

func respondErrorCode(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
