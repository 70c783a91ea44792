package proto

import (
	"context"
	"net"
	"strings"

	"github.com/go-playground/validator"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/service"
)

const authorizationMD = "authorization"

var Module = fx.Module("grpc",
	fx.Provide(NewGRPCServer),
)

type userIDKey struct{}

type BookmarkerServerImpl struct {
	UnimplementedBookmarkerServer

	grpcServer *grpc.Server
	listener   net.Listener
	bookmarks  *service.Bookmarks
	tokens     *auth.TokenManager
	validate   *validator.Validate
	logger     *zap.SugaredLogger
}

func NewGRPCServer(lc fx.Lifecycle, cfg *config.Config, bookmarks *service.Bookmarks, tokens *auth.TokenManager, logger *zap.SugaredLogger) *BookmarkerServerImpl {
	instance := New(bookmarks, tokens, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", cfg.GRPCAddr())
			if err != nil {
				return errors.Wrap(err, "grpc listen")
			}
			instance.listener = lis
			logger.Infow("Starting GRPC server.", "addr", lis.Addr().String())

			go func() {
				if err := instance.Serve(lis); err != nil {
					logger.Errorw("GRPC server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping GRPC server.")
			instance.grpcServer.GracefulStop()
			return nil
		},
	})

	return instance
}

// New registers the bookmark service on a fresh grpc.Server; call Serve to accept connections.
func New(bookmarks *service.Bookmarks, tokens *auth.TokenManager, logger *zap.SugaredLogger) *BookmarkerServerImpl {
	instance := &BookmarkerServerImpl{
		bookmarks: bookmarks,
		tokens:    tokens,
		validate:  validator.New(),
		logger:    logger,
	}
	instance.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(instance.accessTokenInterceptor))
	RegisterBookmarkerServer(instance.grpcServer, instance)
	return instance
}

func (s *BookmarkerServerImpl) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// Addr is the bound address once the lifecycle has started, nil before.
func (s *BookmarkerServerImpl) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *BookmarkerServerImpl) GracefulStop() {
	s.grpcServer.GracefulStop()
}

func (s *BookmarkerServerImpl) GetBookmarks(ctx context.Context, _ *GetBookmarksRequest) (*GetBookmarksResponse, error) {
	bookmarks, err := s.bookmarks.List(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(err)
	}

	items := make([]*Bookmark, len(bookmarks))
	for i := range bookmarks {
		items[i] = toBookmark(&bookmarks[i])
	}
	return &GetBookmarksResponse{Items: items}, nil
}

func (s *BookmarkerServerImpl) GetBookmark(ctx context.Context, req *GetBookmarkRequest) (*GetBookmarkResponse, error) {
	bookmark, err := s.bookmarks.Get(ctx, userIDFromContext(ctx), req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	if bookmark == nil {
		return &GetBookmarkResponse{}, nil
	}
	return &GetBookmarkResponse{Item: toBookmark(bookmark)}, nil
}

func (s *BookmarkerServerImpl) CreateBookmark(ctx context.Context, req *CreateBookmarkRequest) (*Bookmark, error) {
	if err := s.validateFields(map[string]*string{"title": &req.Title, "link": &req.Link}); err != nil {
		return nil, err
	}

	bookmark, err := s.bookmarks.Create(ctx, userIDFromContext(ctx), service.CreateBookmark{
		Title:       req.GetTitle(),
		Link:        req.GetLink(),
		Description: req.Description,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toBookmark(bookmark), nil
}

func (s *BookmarkerServerImpl) EditBookmark(ctx context.Context, req *EditBookmarkRequest) (*Bookmark, error) {
	// absent fields are left alone, present ones must not be blank
	if err := s.validateFields(map[string]*string{"title": req.Title, "link": req.Link}); err != nil {
		return nil, err
	}

	bookmark, err := s.bookmarks.Edit(ctx, userIDFromContext(ctx), req.GetId(), service.EditBookmark{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toBookmark(bookmark), nil
}

func (s *BookmarkerServerImpl) DeleteBookmark(ctx context.Context, req *DeleteBookmarkRequest) (*Bookmark, error) {
	bookmark, err := s.bookmarks.Delete(ctx, userIDFromContext(ctx), req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toBookmark(bookmark), nil
}

// accessTokenInterceptor authenticates every call; handlers can rely on the user id in ctx.
func (s *BookmarkerServerImpl) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(authorizationMD); len(values) > 0 {
			token = values[0]
		}
	}
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, userIDKey{}, userID), req)
}

func (s *BookmarkerServerImpl) toStatus(err error) error {
	switch service.KindOf(err) {
	case service.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case service.KindUnauthorized:
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return status.FromContextError(err).Err()
		}
		s.logger.Errorw("grpc call failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *BookmarkerServerImpl) validateFields(fields map[string]*string) error {
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := s.validate.Var(*value, "required"); err != nil {
			return status.Errorf(codes.InvalidArgument, "%s is required", name)
		}
	}
	return nil
}

func userIDFromContext(ctx context.Context) uint64 {
	userID, _ := ctx.Value(userIDKey{}).(uint64)
	return userID
}

func toBookmark(b *db.Bookmark) *Bookmark {
	return &Bookmark{
		Id:          b.ID,
		CreatedAt:   timestamppb.New(b.CreatedAt),
		UpdatedAt:   timestamppb.New(b.UpdatedAt),
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		UserId:      b.UserID,
	}
}
