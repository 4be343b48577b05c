package http

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// requestActor resolves the caller or writes a 401 and returns false.
func requestActor(w http.ResponseWriter, r *http.Request, clock timezone.Clock) (user.Actor, bool) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, clock(), err)
		return user.Actor{}, false
	}
	return actor, true
}

// decodeJSON decodes the body into dst. An empty body is allowed when optional is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// clientIP returns the caller address without the port. RealIP may already have stripped it.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
