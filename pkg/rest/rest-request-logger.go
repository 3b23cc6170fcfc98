package rest

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags each request with a unique identifier and logs its
// method, path, origin and duration once the wrapped handler returns.
func RequestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			reqUUID, err := uuid.NewV4()
			if err != nil {
				logger.WithError(err).Error("can't generate a request UUID")
				writer.WriteHeader(http.StatusInternalServerError)
				return
			}

			var start = time.Now()
			next.ServeHTTP(writer, request)

			logger.WithFields(logrus.Fields{
				"reqid":     reqUUID.String(),
				"remote-ip": request.RemoteAddr,
				"elapsed":   time.Since(start),
			}).Infof("%s %s", request.Method, request.URL.Path)
		})
	}
}
