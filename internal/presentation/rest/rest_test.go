package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NorthPeak-Exteriors/site-backend/internal/application"
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/commands"
	"github.com/NorthPeak-Exteriors/site-backend/internal/application/dto"
	"github.com/NorthPeak-Exteriors/site-backend/internal/infra/mail"
	sut "github.com/NorthPeak-Exteriors/site-backend/internal/presentation/rest"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *mail.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func newTestApp(sender mail.Sender, cfg *mail.MailConfig) *fiber.App {
	handlers := &application.Collection{
		SubmitContact: commands.NewSubmitContact(sender, cfg, true),
	}
	app := fiber.New()
	sut.RegisterHandlers(app, sut.NewServer(handlers))
	return app
}

func validMailConfig() *mail.MailConfig {
	return &mail.MailConfig{
		Host:      "smtp.example.com",
		Port:      465,
		Username:  "relay@example.com",
		Password:  "secret",
		Recipient: "quotes@example.com",
		Timeout:   15 * time.Second,
	}
}

func postContact(t *testing.T, app *fiber.App, payload string) (int, dto.ContactResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body dto.ContactResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return res.StatusCode, body
}

func Test_SubmitContact_Given_Valid_Payload_When_Posted_Then_200_With_Confirmation(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(sender, validMailConfig())

	status, body := postContact(t, app, `{"name":"A","email":"a@x.com","message":"hi","service":"roofing"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, body.Success)
	require.Equal(t, "Quote request sent", body.Message)
	require.Len(t, sender.sent, 1)
	require.Contains(t, sender.sent[0].Subject, "roofing")
}

func Test_SubmitContact_Given_Blank_Name_When_Posted_Then_400_Naming_Field(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(sender, validMailConfig())

	status, body := postContact(t, app, `{"name":"","email":"a@x.com","message":"hi","service":"roofing"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, body.Success)
	require.Contains(t, body.Error, "name")
	require.Empty(t, sender.sent)
}

func Test_SubmitContact_Given_Unconfigured_Mail_When_Posted_Then_500_Without_Send(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(sender, &mail.MailConfig{Port: 465})

	status, body := postContact(t, app, `{"name":"A","email":"a@x.com","message":"hi","service":"roofing"}`)
	require.Equal(t, fiber.StatusInternalServerError, status)
	require.False(t, body.Success)
	require.Equal(t, "Mail server not configured", body.Error)
	require.Empty(t, sender.sent)
}

func Test_SubmitContact_Given_Failing_Sender_When_Posted_Then_500_With_Cause(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	app := newTestApp(sender, validMailConfig())

	status, body := postContact(t, app, `{"name":"A","email":"a@x.com","message":"hi","service":"roofing"}`)
	require.Equal(t, fiber.StatusInternalServerError, status)
	require.False(t, body.Success)
	require.Contains(t, body.Error, "connection refused")
}

func Test_SubmitContact_Given_Malformed_JSON_When_Posted_Then_400(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(sender, validMailConfig())

	status, body := postContact(t, app, `{"name":`)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, body.Success)
	require.Empty(t, sender.sent)
}

func Test_Healthz_When_Requested_Then_200_OK(t *testing.T) {
	app := newTestApp(&fakeSender{}, validMailConfig())

	res, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, "ok", string(raw))
}
