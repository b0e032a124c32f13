package apisvc

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/darasaonline/darasa/core/batch"
	"github.com/darasaonline/darasa/core/content"
	"github.com/darasaonline/darasa/core/earnings"
	"github.com/darasaonline/darasa/core/notification"
	"github.com/darasaonline/darasa/core/schedule"
	"github.com/darasaonline/darasa/core/student"
)

var (
	_ batch.API        = (*Client)(nil)
	_ schedule.API     = (*Client)(nil)
	_ student.API      = (*Client)(nil)
	_ earnings.API     = (*Client)(nil)
	_ notification.API = (*Client)(nil)
	_ content.API      = (*Client)(nil)
)

// Auth

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The client itself stays
// session-less; the caller builds a core.Session from the returned token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var res tokenResponse
	if err := c.post(ctx, "/auth/login", credentials{Username: username, Password: password}, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// Batches

func (c *Client) ListBatches(ctx context.Context) ([]batch.Batch, error) {
	var out []batch.Batch
	err := c.get(ctx, "/batches", &out)
	return out, err
}

func (c *Client) GetBatch(ctx context.Context, id string) (batch.Batch, error) {
	var out batch.Batch
	err := c.get(ctx, "/batches/"+pathEscape(id), &out)
	return out, err
}

func (c *Client) CreateBatch(ctx context.Context, nb batch.NewBatch) (batch.Batch, error) {
	var out batch.Batch
	err := c.post(ctx, "/batches", nb, &out)
	return out, err
}

func (c *Client) UpdateBatch(ctx context.Context, id string, ub batch.UpdateBatch) (batch.Batch, error) {
	var out batch.Batch
	err := c.put(ctx, "/batches/"+pathEscape(id), ub, &out)
	return out, err
}

func (c *Client) EnrollStudent(ctx context.Context, batchID, studentID string) error {
	body := map[string]string{"student_id": studentID}
	return c.post(ctx, "/batches/"+pathEscape(batchID)+"/students", body, nil)
}

func (c *Client) RemoveStudent(ctx context.Context, batchID, studentID string) error {
	return c.delete(ctx, "/batches/"+pathEscape(batchID)+"/students/"+pathEscape(studentID))
}

// Live classes

func (c *Client) ListSessions(ctx context.Context) ([]schedule.Session, error) {
	var out []schedule.Session
	err := c.get(ctx, "/live-classes", &out)
	return out, err
}

type newSessionBody struct {
	BatchID     string `json:"batch_id"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Duration    int    `json:"duration"`
	MeetingType string `json:"meeting_type"`
	MeetingLink string `json:"meeting_link"`
}

func (c *Client) CreateSession(ctx context.Context, ns schedule.NewSession) (schedule.Session, error) {
	body := newSessionBody{
		BatchID:     ns.BatchID,
		Topic:       ns.Topic,
		Description: ns.Description,
		StartTime:   ns.StartTime,
		EndTime:     ns.EndTime,
		Duration:    ns.DurationMinutes(),
		MeetingType: ns.MeetingType,
		MeetingLink: ns.MeetingLink,
	}
	var out schedule.Session
	err := c.post(ctx, "/live-classes", body, &out)
	return out, err
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.delete(ctx, "/live-classes/"+pathEscape(id))
}

// Students

func (c *Client) ListStudents(ctx context.Context) ([]student.Student, error) {
	var out []student.Student
	err := c.get(ctx, "/students", &out)
	return out, err
}

func (c *Client) SearchStudents(ctx context.Context, query string) ([]student.Student, error) {
	var out []student.Student
	err := c.get(ctx, "/students/search?q="+url.QueryEscape(query), &out)
	return out, err
}

// Earnings & payouts

func (c *Client) GetEarnings(ctx context.Context) (earnings.Snapshot, error) {
	var out earnings.Snapshot
	err := c.get(ctx, "/earnings", &out)
	return out, err
}

func (c *Client) SubmitPayout(ctx context.Context, pr earnings.PayoutRequest) (earnings.PayoutRow, error) {
	var out earnings.PayoutRow
	err := c.post(ctx, "/payouts", pr, &out)
	return out, err
}

// Notifications

func (c *Client) ListNotifications(ctx context.Context) ([]notification.Notification, error) {
	var out []notification.Notification
	err := c.get(ctx, "/notifications", &out)
	return out, err
}

func (c *Client) SendNotification(ctx context.Context, nn notification.NewNotification) (notification.Notification, error) {
	var out notification.Notification
	err := c.post(ctx, "/notifications", nn, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.put(ctx, "/notifications/"+pathEscape(id)+"/read", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.delete(ctx, "/notifications/"+pathEscape(id))
}

// Content library

func (c *Client) ListContent(ctx context.Context) ([]content.Content, error) {
	var out []content.Content
	err := c.get(ctx, "/content", &out)
	return out, err
}

func (c *Client) UploadContent(ctx context.Context, ur content.UploadRequest, file io.Reader) (content.Content, error) {
	fields := map[string]string{
		"title":       ur.Title,
		"description": ur.Description,
		"notes":       ur.Notes,
		"tags":        ur.Tags,
		"quality":     ur.Quality,
		"public":      strconv.FormatBool(ur.Public),
		"batch_id":    ur.BatchID,
	}
	var out content.Content
	err := c.upload(ctx, "/content", fields, "file", ur.FileName, file, &out)
	return out, err
}

func (c *Client) DeleteContent(ctx context.Context, id string) error {
	return c.delete(ctx, "/content/"+pathEscape(id))
}
