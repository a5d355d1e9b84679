package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/internal/catalog/handler"
	"github.com/narwhalmedia/catalog/internal/catalog/service"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	jwt    *auth.JWTManager
}

func TestHandlerTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	log := logger.NewNoop()
	deps := service.Deps{
		Store:     testutil.NewStore(s.T()),
		Enforcer:  auth.NewPolicyEnforcer(auth.NewRBAC()),
		Publisher: events.NewLocalPublisher(log),
		Logger:    log,
	}
	services := handler.Services{
		Developers: service.NewDeveloperService(deps),
		Genres:     service.NewGenreService(deps),
		Platforms:  service.NewPlatformService(deps),
		Crew:       service.NewCrewService(deps),
		Games:      service.NewGameService(deps),
		Movies:     service.NewMovieService(deps),
		Media:      service.NewMediaService(deps),
		Users:      service.NewUserService(deps),
		Likes:      service.NewLikeService(deps),
		Reviews:    service.NewReviewService(deps),
	}

	s.jwt = auth.NewJWTManager("test-secret", "catalog-test", time.Hour)
	s.router = handler.NewRouter(handler.NewHandler(services, auth.NewAuthenticator(s.jwt), log))
}

func (s *HandlerTestSuite) token(sub string, roles ...string) string {
	token, _, err := s.jwt.GenerateToken(auth.NewPrincipal(sub, roles...))
	s.Require().NoError(err)
	return token
}

func (s *HandlerTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *HandlerTestSuite) createID(path, token string, body interface{}) uint {
	w := s.do(http.MethodPost, path, token, body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return uint(s.decode(w)["id"].(float64))
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", s.decode(w)["status"])
	s.NotEmpty(w.Header().Get(logger.RequestIDHeader))
}

func (s *HandlerTestSuite) TestWritesRequireToken() {
	w := s.do(http.MethodPost, "/api/genres", "", map[string]string{"name": "RPG"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/genres", "garbage", map[string]string{"name": "RPG"})
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/genres", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestErrorMapping() {
	user := s.token("alice", auth.RoleUser)
	s.createID("/api/genres", user, map[string]string{"name": "RPG"})

	w := s.do(http.MethodPost, "/api/genres", user, map[string]string{"name": "rpg"})
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("CONFLICT", s.decode(w)["error"])
	s.Equal("genre already exists", s.decode(w)["message"])

	w = s.do(http.MethodPost, "/api/genres", user, map[string]string{"name": ""})
	s.Equal(http.StatusBadRequest, w.Code)
	s.NotEmpty(s.decode(w)["fields"])

	w = s.do(http.MethodGet, "/api/genres/999", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/genres/abc", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/genres", s.token("visitor", auth.RoleGuest), map[string]string{"name": "Puzzle"})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/genres?size=1000", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGameLifecycle() {
	alice := s.token("alice", auth.RoleUser)
	bob := s.token("bob", auth.RoleUser)
	admin := s.token("root", auth.RoleAdmin)

	dev := s.createID("/api/developers", alice, map[string]string{"name": "Supergiant"})
	genre := s.createID("/api/genres", alice, map[string]string{"name": "Roguelike"})
	ps := s.createID("/api/platforms", alice, map[string]string{"name": "PS5"})
	pc := s.createID("/api/platforms", alice, map[string]string{"name": "PC"})

	body := map[string]interface{}{
		"title":       "Hades",
		"releaseDate": "2020-09-17",
		"developerId": dev,
		"genreIds":    []uint{genre},
		"platformIds": []uint{ps, pc},
		"price":       24.99,
	}
	w := s.do(http.MethodPost, "/api/games", alice, map[string]interface{}{"title": "Bad", "releaseDate": "17/09/2020"})
	s.Equal(http.StatusBadRequest, w.Code)

	gameID := s.createID("/api/games", alice, body)

	w = s.do(http.MethodGet, "/api/games?platform=pc&platform=xbox&genre=roguelike", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	page := s.decode(w)
	s.Equal(float64(1), page["totalItems"])

	w = s.do(http.MethodGet, fmt.Sprintf("/api/media/%d", gameID), "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("GAME", s.decode(w)["mediaType"])

	body["title"] = "Hades II"
	w = s.do(http.MethodPut, fmt.Sprintf("/api/games/%d", gameID), bob, body)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("unauthorized update", s.decode(w)["message"])

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/games/%d", gameID), bob, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("unauthorized delete", s.decode(w)["message"])

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/admin/games/%d", gameID), alice, nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/admin/games/%d", gameID), admin, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/media/%d", gameID), "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestLikesAndReviews() {
	alice := s.token("alice", auth.RoleUser)
	bob := s.token("bob", auth.RoleUser)

	s.createID("/api/users", alice, map[string]string{"userName": "alice"})
	s.createID("/api/users", bob, map[string]string{"userName": "bobby"})

	movieID := s.createID("/api/movies", alice, map[string]interface{}{
		"title":       "Arrival",
		"releaseDate": "2016-11-11",
		"duration":    116,
	})

	likePath := fmt.Sprintf("/api/media/%d/likes", movieID)
	likeID := s.createID(likePath, bob, nil)

	w := s.do(http.MethodPost, likePath, bob, nil)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/media/999/likes", bob, nil)
	s.Equal(http.StatusNotFound, w.Code)

	reviewID := s.createID(fmt.Sprintf("/api/media/%d/reviews", movieID), bob, map[string]interface{}{"score": 9})

	w = s.do(http.MethodPut, fmt.Sprintf("/api/reviews/%d", reviewID), bob, map[string]interface{}{"writtenReview": "Moving."})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(9), s.decode(w)["score"])

	w = s.do(http.MethodGet, "/api/users/bob/likes", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(1), s.decode(w)["totalItems"])

	w = s.do(http.MethodGet, fmt.Sprintf("/api/movies/%d", movieID), "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	movie := s.decode(w)
	s.Equal(float64(1), movie["likeCount"])
	s.Equal(float64(1), movie["reviewCount"])

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/likes/%d", likeID), alice, nil)
	s.Equal(http.StatusForbidden, w.Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/likes/%d", likeID), bob, nil)
	s.Equal(http.StatusNoContent, w.Code)
}
