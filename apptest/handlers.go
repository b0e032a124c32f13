package apptest

import (
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/darasaonline/darasa/core"
	"github.com/darasaonline/darasa/core/batch"
	"github.com/darasaonline/darasa/core/content"
	"github.com/darasaonline/darasa/core/earnings"
	"github.com/darasaonline/darasa/core/notification"
	"github.com/darasaonline/darasa/core/schedule"
	"github.com/darasaonline/darasa/core/student"
)

// Batches (wrapped envelope)

func (s *Server) listBatches(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return wrapped(c, http.StatusOK, sortedBatches(s.Batches))
}

func (s *Server) getBatch(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.Batches[c.Param("id")]; ok {
		return wrapped(c, http.StatusOK, b)
	}
	return notFound(c)
}

func (s *Server) createBatch(c echo.Context) error {
	var nb batch.NewBatch
	if err := c.Bind(&nb); err != nil {
		return err
	}
	b := batch.Batch{
		ID:           uuid.NewString(),
		Name:         nb.Name,
		CourseName:   nb.CourseName,
		StudentLimit: nb.StudentLimit,
		IsActive:     true,
		ScheduleNote: nb.ScheduleNote,
	}
	s.mu.Lock()
	s.Batches[b.ID] = b
	s.mu.Unlock()
	return wrapped(c, http.StatusCreated, b)
}

func (s *Server) updateBatch(c echo.Context) error {
	var ub batch.UpdateBatch
	if err := c.Bind(&ub); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Batches[c.Param("id")]
	if !ok {
		return notFound(c)
	}
	if ub.Name != "" {
		b.Name = ub.Name
	}
	if ub.CourseName != "" {
		b.CourseName = ub.CourseName
	}
	if ub.StudentLimit != nil {
		b.StudentLimit = *ub.StudentLimit
	}
	if ub.IsActive != nil {
		b.IsActive = *ub.IsActive
	}
	if ub.ScheduleNote != nil {
		b.ScheduleNote = *ub.ScheduleNote
	}
	s.Batches[b.ID] = b
	return wrapped(c, http.StatusOK, b)
}

func (s *Server) enrollStudent(c echo.Context) error {
	var body struct {
		StudentID string `json:"student_id"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Batches[c.Param("id")]
	if !ok {
		return notFound(c)
	}
	if b.IsFull() {
		return c.JSON(http.StatusConflict, echo.Map{
			"success": false, "message": "batch is full",
		})
	}
	if !b.HasStudent(body.StudentID) {
		b.Students = append(b.Students, body.StudentID)
		s.Batches[b.ID] = b
	}
	return wrapped(c, http.StatusOK, b)
}

func (s *Server) removeStudent(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Batches[c.Param("id")]
	if !ok {
		return notFound(c)
	}
	students := b.Students[:0]
	for _, id := range b.Students {
		if id != c.Param("sid") {
			students = append(students, id)
		}
	}
	b.Students = students
	s.Batches[b.ID] = b
	return wrapped(c, http.StatusOK, b)
}

// Live classes (wrapped envelope)

func (s *Server) listSessions(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schedule.Session, 0, len(s.Sessions))
	for _, sess := range s.Sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return wrapped(c, http.StatusOK, out)
}

func (s *Server) createSession(c echo.Context) error {
	var body struct {
		BatchID     string `json:"batch_id"`
		Topic       string `json:"topic"`
		Description string `json:"description"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		Duration    int    `json:"duration"`
		MeetingType string `json:"meeting_type"`
		MeetingLink string `json:"meeting_link"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}
	start, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "invalid start_time",
		})
	}
	end, err := time.Parse(time.RFC3339, body.EndTime)
	if err != nil || !end.After(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "end_time must be after start_time",
		})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.Batches[body.BatchID]
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "unknown batch",
		})
	}
	sess := schedule.Session{
		ID:            uuid.NewString(),
		BatchID:       body.BatchID,
		Topic:         body.Topic,
		Description:   body.Description,
		StartTime:     start,
		EndTime:       &end,
		Duration:      body.Duration,
		MeetingType:   body.MeetingType,
		MeetingLink:   body.MeetingLink,
		StudentsCount: b.StudentsCount(),
	}
	s.Sessions[sess.ID] = sess
	return wrapped(c, http.StatusCreated, sess)
}

func (s *Server) deleteSession(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Sessions[c.Param("id")]; !ok {
		return notFound(c)
	}
	delete(s.Sessions, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Students (bare payload)

func (s *Server) listStudents(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bare(c, http.StatusOK, sortedStudents(s.Students))
}

func (s *Server) searchStudents(c echo.Context) error {
	q := strings.ToLower(c.QueryParam("q"))
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]student.Student, 0)
	for _, st := range sortedStudents(s.Students) {
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Email), q) {
			out = append(out, st)
		}
	}
	return bare(c, http.StatusOK, out)
}

// Earnings (wrapped) & payouts

func (s *Server) getEarnings(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return wrapped(c, http.StatusOK, s.Earnings)
}

func (s *Server) submitPayout(c echo.Context) error {
	var pr struct {
		Amount     float64 `json:"amount"`
		Method     string  `json:"method"`
		AccountRef string  `json:"account_ref"`
	}
	if err := c.Bind(&pr); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if pr.Amount > s.Earnings.Available() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "amount exceeds available balance",
		})
	}
	row := earningsRow(pr.Amount, pr.Method)
	s.Earnings.Pending += pr.Amount
	s.Earnings.Payouts = append(s.Earnings.Payouts, row)
	return wrapped(c, http.StatusCreated, row)
}

// Notifications (bare payload)

func (s *Server) listNotifications(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]notification.Notification, 0, len(s.Notifications))
	for _, n := range s.Notifications {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return bare(c, http.StatusOK, out)
}

func (s *Server) sendNotification(c echo.Context) error {
	var nn notification.NewNotification
	if err := c.Bind(&nn); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	recipients := 0
	if b, ok := s.Batches[nn.BatchID]; ok {
		recipients = b.StudentsCount()
	}
	n := notification.Notification{
		ID:             uuid.NewString(),
		Title:          nn.Title,
		Message:        nn.Message,
		Audience:       nn.Audience,
		BatchID:        nn.BatchID,
		Status:         notification.StatusSent,
		RecipientCount: recipients,
		CreatedAt:      time.Now().UTC(),
	}
	s.Notifications[n.ID] = n
	return bare(c, http.StatusCreated, n)
}

func (s *Server) markNotificationRead(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.Notifications[c.Param("id")]
	if !ok {
		return notFound(c)
	}
	n.Read = true
	n.ReadCount++
	s.Notifications[n.ID] = n
	return bare(c, http.StatusOK, n)
}

func (s *Server) deleteNotification(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Notifications[c.Param("id")]; !ok {
		return notFound(c)
	}
	delete(s.Notifications, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Content library (wrapped)

func (s *Server) listContent(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]content.Content, 0, len(s.Contents))
	for _, cn := range s.Contents {
		out = append(out, cn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return wrapped(c, http.StatusOK, out)
}

func (s *Server) uploadContent(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "file is required",
		})
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	size, _ := io.Copy(io.Discard, src)

	public, _ := strconv.ParseBool(c.FormValue("public"))
	tags := make([]string, 0)
	for _, t := range strings.Split(c.FormValue("tags"), ",") {
		if t = core.CleanString(t); t != "" {
			tags = append(tags, t)
		}
	}
	cn := content.Content{
		ID:          uuid.NewString(),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Notes:       c.FormValue("notes"),
		Tags:        tags,
		Quality:     c.FormValue("quality"),
		Public:      public,
		BatchID:     c.FormValue("batch_id"),
		URL:         "/media/" + file.Filename + "?bytes=" + itoa(int(size)),
		UploadedAt:  time.Now().UTC(),
	}
	s.mu.Lock()
	s.Contents[cn.ID] = cn
	s.mu.Unlock()
	return wrapped(c, http.StatusCreated, cn)
}

func (s *Server) deleteContent(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Contents[c.Param("id")]; !ok {
		return notFound(c)
	}
	delete(s.Contents, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func earningsRow(amount float64, method string) earnings.PayoutRow {
	return earnings.PayoutRow{
		ID:          uuid.NewString(),
		Amount:      amount,
		Status:      earnings.PayoutPending,
		Method:      method,
		RequestedAt: time.Now().UTC(),
	}
}

// sorted snapshots keep list responses deterministic for tests

func sortedBatches(m map[string]batch.Batch) []batch.Batch {
	out := make([]batch.Batch, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortedStudents(m map[string]student.Student) []student.Student {
	out := make([]student.Student, 0, len(m))
	for _, st := range m {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
