package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vrentals-api/internal/application/auth"
	"github.com/vrentals-api/internal/domain"
)

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) RequestReset(ctx context.Context, req auth.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *mockAuthSvc) VerifyCode(ctx context.Context, req auth.VerifyOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *mockAuthSvc) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func post(h http.HandlerFunc, target string, body []byte) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body)))
	return rr
}

func TestForgotPassword_Sent(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestReset", mock.Anything, auth.ForgotPasswordRequest{Email: "a@x.com"}).Return(nil)

	rr := post(NewPasswordResetHandler(svc).ForgotPassword, "/api/forgot-password", []byte(`{"email":"a@x.com"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OTP sent to your email", decodeMessage(t, rr).Message)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestReset", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

	rr := post(NewPasswordResetHandler(svc).ForgotPassword, "/api/forgot-password", []byte(`{"email":"ghost@x.com"}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeMessage(t, rr).Message)
}

func TestForgotPassword_MissingEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestReset", mock.Anything, mock.Anything).Return(domain.ErrValidation)

	rr := post(NewPasswordResetHandler(svc).ForgotPassword, "/api/forgot-password", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Please provide an email", decodeMessage(t, rr).Message)
}

func TestVerifyOTP_Invalid(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyCode", mock.Anything, auth.VerifyOTPRequest{Email: "a@x.com", OTP: "000000"}).Return(domain.ErrInvalidCode)

	rr := post(NewPasswordResetHandler(svc).VerifyOTP, "/api/verify-otp", []byte(`{"email":"a@x.com","otp":"000000"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid or expired OTP", decodeMessage(t, rr).Message)
}

func TestVerifyOTP_Valid(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifyCode", mock.Anything, mock.Anything).Return(nil)

	rr := post(NewPasswordResetHandler(svc).VerifyOTP, "/api/verify-otp", []byte(`{"email":"a@x.com","otp":"482913"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OTP verified successfully", decodeMessage(t, rr).Message)
}

func TestResetPassword_DecodesCamelCaseField(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResetPassword", mock.Anything, auth.ResetPasswordRequest{Email: "a@x.com", OTP: "482913", NewPassword: "n3w"}).Return(nil)

	rr := post(NewPasswordResetHandler(svc).ResetPassword, "/api/reset-password",
		[]byte(`{"email":"a@x.com","otp":"482913","newPassword":"n3w"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Password reset successfully", decodeMessage(t, rr).Message)
	svc.AssertExpectations(t)
}

func TestResetPassword_MissingFields(t *testing.T) {
	svc := &mockAuthSvc{}

	rr := post(NewPasswordResetHandler(svc).ResetPassword, "/api/reset-password", []byte(`not json`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Please provide email, OTP, and new password", decodeMessage(t, rr).Message)
}
