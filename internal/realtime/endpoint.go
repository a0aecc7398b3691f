package realtime

import (
	"net/http"
	"strings"

	"autocare-api/internal/domain/user"
	"autocare-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/igm/sockjs-go/sockjs"
)

// NewEndpoint returns the SockJS handler for /realtime. The connection
// authenticates with the same JWT the REST API uses, passed either as a
// bearer header or a ?token= query parameter (browser SockJS clients cannot
// set headers on the underlying transports).
func NewEndpoint(hub *Hub, tokens *jwt.Service, sendBuffer int) http.Handler {
	if sendBuffer <= 0 {
		sendBuffer = 16
	}
	return sockjs.NewHandler("/realtime", sockjs.DefaultOptions, func(session sockjs.Session) {
		token := tokenFromRequest(session.Request())
		if token == "" {
			_ = session.Close(4001, "missing token")
			return
		}
		claims, err := tokens.ValidateToken(token)
		if err != nil {
			_ = session.Close(4002, "invalid token")
			return
		}
		role := user.Role(claims.Role)
		if !role.IsValid() {
			_ = session.Close(4003, "unknown role")
			return
		}

		client := &Client{
			ID:     uuid.NewString(),
			UserID: claims.UserID,
			Role:   role,
			Send:   make(chan []byte, sendBuffer),
		}
		hub.Register(client)
		defer hub.Unregister(client)

		go func() {
			for msg := range client.Send {
				_ = session.Send(string(msg))
			}
		}()

		// Inbound messages are ignored; the stream is server → client only.
		// Recv returning an error means the connection is gone.
		for {
			if _, err := session.Recv(); err != nil {
				return
			}
		}
	})
}

func tokenFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if token := bearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
