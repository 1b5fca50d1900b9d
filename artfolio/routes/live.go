package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/live"
	"artfolio/artfolio/middlewares"
	"artfolio/artfolio/utils/logging"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const authReadTimeout = 10 * time.Second

// LiveRoutes streams the user's gallery notifications over a websocket.
// Browsers cannot set headers on websocket requests, so the token may also
// arrive as the first message: {"token": "..."}.
func LiveRoutes(hub *live.Hub, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		userID, err := authenticateSocket(ctx, conn, r, cfg.JWTSecret)
		if err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		msgs, leave := hub.Subscribe(userID)
		defer leave()
		logging.AppLogger.Info("live feed opened", zap.String("user_id", userID))
		if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"ready"}`)); err != nil {
			return
		}

		ctx = conn.CloseRead(ctx)
		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case msg := <-msgs:
				if err := wsjson.Write(ctx, conn, msg); err != nil {
					return
				}
			}
		}
	})
	return r
}

func authenticateSocket(ctx context.Context, conn *websocket.Conn, r *http.Request, secret string) (string, error) {
	if tok, ok := middlewares.BearerToken(r); ok {
		return middlewares.ParseToken(secret, tok)
	}
	readCtx, cancel := context.WithTimeout(ctx, authReadTimeout)
	defer cancel()
	typ, data, err := conn.Read(readCtx)
	if err != nil {
		return "", err
	}
	if typ != websocket.MessageText {
		return "", middlewares.ErrInvalidToken
	}
	var input struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return "", middlewares.ErrInvalidToken
	}
	return middlewares.ParseToken(secret, input.Token)
}
