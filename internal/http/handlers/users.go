package handlers

import (
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/service"
	"github.com/pribylovaa/mindwell/internal/storage"
)

var errBanFlagRequired = &service.Error{
	Kind:    service.ErrInvalidArgument,
	Message: "is_banned (boolean) is required in the request body.",
}

// updateProfileRequest — поля профиля из allow-list; отсутствующие не меняются.
type updateProfileRequest struct {
	Username              *string `json:"username"`
	FullName              *string `json:"full_name"`
	Email                 *string `json:"email"`
	DateOfBirth           *string `json:"date_of_birth"`
	Gender                *string `json:"gender"`
	Bio                   *string `json:"bio"`
	ProfileImage          *string `json:"profile_image"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	WaterGoalML           *int    `json:"water_goal_ml"`
}

func (in updateProfileRequest) toUpdate() (storage.UserUpdate, error) {
	upd := storage.UserUpdate{
		Username:              in.Username,
		FullName:              in.FullName,
		Email:                 in.Email,
		Gender:                in.Gender,
		Bio:                   in.Bio,
		ProfileImage:          in.ProfileImage,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		WaterGoalML:           in.WaterGoalML,
	}

	if in.DateOfBirth != nil {
		d, err := time.Parse(dateLayout, *in.DateOfBirth)
		if err != nil {
			return storage.UserUpdate{}, service.ErrInvalidDate
		}
		upd.DateOfBirth = &d
	}

	return upd, nil
}

type journalPasswordRequest struct {
	Password        string `json:"password"`
	CurrentPassword string `json:"current_password"`
}

type verifyResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

type avatarPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type avatarConfirmRequest struct {
	AvatarKey string `json:"avatar_key"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type rolesResponse struct {
	Message string   `json:"message,omitempty"`
	UserID  int64    `json:"user_id"`
	Roles   []string `json:"roles"`
}

type banRequest struct {
	IsBanned *bool `json:"is_banned"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.svc.Profile(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateProfileRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	upd, err := in.toUpdate()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), id.UserID, upd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) SetJournalPassword(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in journalPasswordRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.SetJournalPassword(r.Context(), id.UserID, in.Password, in.CurrentPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Journal password set successfully."})
}

func (h *Handlers) VerifyJournalPassword(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in journalPasswordRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ok, err := h.svc.VerifyJournalPassword(r.Context(), id.UserID, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	msg := "Journal password verified successfully."
	if !ok {
		msg = "Incorrect journal password."
	}

	writeJSON(w, http.StatusOK, verifyResponse{Message: msg, Verified: ok})
}

func (h *Handlers) RemoveJournalPassword(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in journalPasswordRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.RemoveJournalPassword(r.Context(), id.UserID, in.CurrentPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Journal password removed successfully."})
}

func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in avatarPresignRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	info, err := h.svc.AvatarUploadURL(r.Context(), id.UserID, in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in avatarConfirmRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	user, err := h.svc.ConfirmAvatar(r.Context(), id.UserID, in.AvatarKey)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	users, err := h.svc.ListUsers(r.Context(), id.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target, err := pathID(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id.UserID, target); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("User with ID %d deleted successfully.", target)})
}

func (h *Handlers) UserRoles(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target, err := pathID(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	roles, err := h.svc.UserRoles(r.Context(), id.UserID, target)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rolesResponse{UserID: target, Roles: roles})
}

func (h *Handlers) AssignRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, true)
}

func (h *Handlers) RemoveRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, false)
}

func (h *Handlers) changeRole(w http.ResponseWriter, r *http.Request, assign bool) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target, err := pathID(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in roleRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var (
		roles []string
		msg   string
	)
	if assign {
		roles, err = h.svc.AssignRole(r.Context(), id.UserID, target, in.Role)
		msg = fmt.Sprintf("Role %q assigned successfully", in.Role)
	} else {
		roles, err = h.svc.RemoveRole(r.Context(), id.UserID, target, in.Role)
		msg = fmt.Sprintf("Role %q removed successfully", in.Role)
	}
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rolesResponse{Message: msg, UserID: target, Roles: roles})
}

func (h *Handlers) SetBanStatus(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	target, err := pathID(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in banRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if in.IsBanned == nil {
		apierrors.WriteError(w, r, errBanFlagRequired)
		return
	}

	user, err := h.svc.SetBanStatus(r.Context(), id.UserID, target, *in.IsBanned)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	verb := "unbanned"
	if *in.IsBanned {
		verb = "banned"
	}

	writeJSON(w, http.StatusOK, userResponse{
		Message: fmt.Sprintf("User %s %s successfully.", user.Username, verb),
		User:    user,
	})
}
