package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/service"
)

const (
	userIDKey     = "userID"
	censoredValue = "$censored"
	bearerPrefix  = "bearer "
)

var censoredFields = []string{"password"}

type (
	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		e         *echo.Echo
		bookmarks *service.Bookmarks
		users     *service.Users
		tokens    *auth.TokenManager
		logger    *zap.SugaredLogger
	}
)

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, bookmarks *service.Bookmarks, users *service.Users, tokens *auth.TokenManager, logger *zap.SugaredLogger) *HTTPServer {
	instance := New(bookmarks, users, tokens, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.HTTPAddr()
				logger.Infow("Starting HTTP server.", "addr", listen)
				if err := instance.e.Start(listen); err != nil && err != http.ErrServerClosed {
					logger.Fatalw("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return instance.e.Shutdown(ctx)
		},
	})

	return instance
}

// New builds the router without binding a listener.
func New(bookmarks *service.Bookmarks, users *service.Users, tokens *auth.TokenManager, logger *zap.SugaredLogger) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	instance := HTTPServer{
		e:         e,
		bookmarks: bookmarks,
		users:     users,
		tokens:    tokens,
		logger:    logger,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(instance.requestLogger())
	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(echo.Context) bool {
			return !logger.Desugar().Core().Enabled(zap.DebugLevel)
		},
		Handler: func(c echo.Context, reqBody, _ []byte) {
			logger.Debugw("request body", "uri", c.Request().RequestURI, "body", string(censorBody(reqBody)))
		},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = instance.errorHandler

	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	authG := e.Group("/auth")
	authG.POST("/signup", instance.Signup)
	authG.POST("/signin", instance.Signin)

	userG := e.Group("/users", instance.AuthMiddleware)
	userG.GET("/me", instance.UserMe)
	userG.PATCH("", instance.UserEdit)

	bookmarkG := e.Group("/bookmarks", instance.AuthMiddleware)
	bookmarkG.GET("", instance.BookmarkList)
	bookmarkG.POST("", instance.BookmarkCreate)
	bookmarkG.GET("/:id", instance.BookmarkGet)
	bookmarkG.PATCH("/:id", instance.BookmarkEdit)
	bookmarkG.DELETE("/:id", instance.BookmarkDelete)

	return &instance
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *HTTPServer) Signup(c echo.Context) error {
	req := models.AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.TokenResp{Token: token})
}

func (s *HTTPServer) Signin(c echo.Context) error {
	req := models.AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.TokenResp{Token: token})
}

func (s *HTTPServer) UserMe(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	user, err := s.users.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(user))
}

func (s *HTTPServer) UserEdit(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	req := models.UserEditReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.users.Edit(c.Request().Context(), userID, service.EditUser{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(user))
}

func (s *HTTPServer) BookmarkList(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	bookmarks, err := s.bookmarks.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkRespList(bookmarks))
}

func (s *HTTPServer) BookmarkCreate(c echo.Context) error {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkCreateReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	bookmark, err := s.bookmarks.Create(c.Request().Context(), userID, service.CreateBookmark{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewBookmarkResp(bookmark))
}

// BookmarkGet answers 200 with a null body when the caller has no such bookmark.
func (s *HTTPServer) BookmarkGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	bookmark, err := s.bookmarks.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}
	if bookmark == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, models.NewBookmarkResp(bookmark))
}

func (s *HTTPServer) BookmarkEdit(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkEditReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	bookmark, err := s.bookmarks.Edit(c.Request().Context(), userID, id, service.EditBookmark{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkResp(bookmark))
}

func (s *HTTPServer) BookmarkDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if _, err := s.bookmarks.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		userID, err := s.tokens.Parse(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

func (s *HTTPServer) errorHandler(err error, c echo.Context) {
	// the request logger re-raises errors it already handled
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		switch service.KindOf(err) {
		case service.KindNotFound:
			he = echo.NewHTTPError(http.StatusNotFound, err.Error())
		case service.KindUnauthorized, service.KindInvalidCredentials:
			he = echo.NewHTTPError(http.StatusForbidden, err.Error())
		case service.KindConflict:
			he = echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			s.logger.Errorw("request failed",
				"method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
			he = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
	}
	s.e.DefaultHTTPErrorHandler(he, c)
}

func (s *HTTPServer) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Infow("request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	})
}

////////

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func GetUserIDFromContext(c echo.Context) (uint64, error) {
	userID, ok := c.Get(userIDKey).(uint64)
	if !ok {
		return 0, errors.New("no user found in context")
	}
	return userID, nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 64)
	if e != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return vv, nil
}

// censorBody masks secrets in a JSON request body. Anything that is not a
// JSON object is returned unchanged.
func censorBody(body []byte) []byte {
	fields := map[string]interface{}{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return body
	}

	censored := false
	for _, name := range censoredFields {
		if _, ok := fields[name]; ok {
			fields[name] = censoredValue
			censored = true
		}
	}
	if !censored {
		return body
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return body
	}
	return out
}
