// Package apptest provides an in-process stand-in for the darasa backend,
// used to exercise the API client and the domain services against real HTTP.
// It deliberately mixes wrapped ({success, data, message}) and bare response
// bodies, matching the backend's inconsistent envelope convention.
package apptest

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/darasaonline/darasa/core"
	"github.com/darasaonline/darasa/core/batch"
	"github.com/darasaonline/darasa/core/content"
	"github.com/darasaonline/darasa/core/earnings"
	"github.com/darasaonline/darasa/core/notification"
	"github.com/darasaonline/darasa/core/schedule"
	"github.com/darasaonline/darasa/core/student"
)

var secretKey = []byte("apptest-secret")

// Server is the stub backend. Exported tables may be seeded directly by
// tests; all handlers guard them with the mutex.
type Server struct {
	app *echo.Echo

	mu            sync.RWMutex
	Users         map[string]string // username -> password
	Batches       map[string]batch.Batch
	Sessions      map[string]schedule.Session
	Students      map[string]student.Student
	Earnings      earnings.Snapshot
	Notifications map[string]notification.Notification
	Contents      map[string]content.Content

	failStatus  int
	failMessage string

	// Requests counts every authenticated call, letting tests assert that
	// local validation produced zero network calls.
	Requests int
}

func NewServer() *Server {
	s := &Server{
		app:           echo.New(),
		Users:         make(map[string]string),
		Batches:       make(map[string]batch.Batch),
		Sessions:      make(map[string]schedule.Session),
		Students:      make(map[string]student.Student),
		Notifications: make(map[string]notification.Notification),
		Contents:      make(map[string]content.Content),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.Logger.SetLevel(log.OFF)
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())

	s.app.POST("/auth/login", s.login)

	api := s.app.Group("", s.authRequired, s.countAndMaybeFail)

	api.GET("/batches", s.listBatches)
	api.POST("/batches", s.createBatch)
	api.GET("/batches/:id", s.getBatch)
	api.PUT("/batches/:id", s.updateBatch)
	api.POST("/batches/:id/students", s.enrollStudent)
	api.DELETE("/batches/:id/students/:sid", s.removeStudent)

	api.GET("/live-classes", s.listSessions)
	api.POST("/live-classes", s.createSession)
	api.DELETE("/live-classes/:id", s.deleteSession)

	api.GET("/students", s.listStudents)
	api.GET("/students/search", s.searchStudents)

	api.GET("/earnings", s.getEarnings)
	api.POST("/payouts", s.submitPayout)

	api.GET("/notifications", s.listNotifications)
	api.POST("/notifications", s.sendNotification)
	api.PUT("/notifications/:id/read", s.markNotificationRead)
	api.DELETE("/notifications/:id", s.deleteNotification)

	api.GET("/content", s.listContent)
	api.POST("/content", s.uploadContent)
	api.DELETE("/content/:id", s.deleteContent)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

// FailNext makes the next authenticated request fail with the given status
// and message, then clears itself.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	s.failStatus, s.failMessage = status, message
	s.mu.Unlock()
}

// IssueToken signs a short-lived teacher token for the given subject.
func (s *Server) IssueToken(userID, name string) string {
	claims := core.Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Name:      name,
		IsTeacher: true,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(secretKey)
	if err != nil {
		panic(err)
	}
	return ss
}

// middleware

func (s *Server) authRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(auth) < 8 || auth[:7] != "Bearer " {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false, "message": "user not authenticated",
			})
		}
		tok, err := jwt.ParseWithClaims(auth[7:], &core.Claims{}, func(*jwt.Token) (interface{}, error) {
			return secretKey, nil
		})
		if err != nil || !tok.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false, "message": "invalid token",
			})
		}
		return next(c)
	}
}

func (s *Server) countAndMaybeFail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.Requests++
		status, msg := s.failStatus, s.failMessage
		s.failStatus, s.failMessage = 0, ""
		s.mu.Unlock()

		if status != 0 {
			return c.JSON(status, echo.Map{"success": false, "message": msg})
		}
		return next(c)
	}
}

// response helpers: wrapped vs bare, both in active use on purpose

func wrapped(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, echo.Map{"success": true, "data": data})
}

func bare(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, data)
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "not found"})
}

func (s *Server) login(c echo.Context) error {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return err
	}
	s.mu.RLock()
	pwd, ok := s.Users[creds.Username]
	s.mu.RUnlock()
	if !ok || pwd != creds.Password {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "authentication failed",
		})
	}
	return wrapped(c, http.StatusOK, echo.Map{
		"token": s.IssueToken(uuid.NewString(), creds.Username),
	})
}

// seeding helpers

func (s *Server) SeedUser(username, password string) {
	s.mu.Lock()
	s.Users[username] = password
	s.mu.Unlock()
}

func (s *Server) SeedBatch(b batch.Batch) batch.Batch {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.mu.Lock()
	s.Batches[b.ID] = b
	s.mu.Unlock()
	return b
}

func (s *Server) SeedSession(sess schedule.Session) schedule.Session {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	s.mu.Lock()
	s.Sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *Server) SeedStudent(st student.Student) student.Student {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	s.mu.Lock()
	s.Students[st.ID] = st
	s.mu.Unlock()
	return st
}

func (s *Server) SeedEarnings(snap earnings.Snapshot) {
	s.mu.Lock()
	s.Earnings = snap
	s.mu.Unlock()
}

func (s *Server) SeedNotification(n notification.Notification) notification.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	s.mu.Lock()
	s.Notifications[n.ID] = n
	s.mu.Unlock()
	return n
}

func itoa(n int) string { return strconv.Itoa(n) }
