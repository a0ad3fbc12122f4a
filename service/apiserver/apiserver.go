package apiserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/meverselabs/presale/common/rlog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const workerCount = 50

// APIServer provides json rpc and web service for the chain
type APIServer struct {
	sync.Mutex
	e      *echo.Echo
	subMap map[string]*JRPCSub
	reqCh  chan *ReqData
	done   chan struct{}
	once   sync.Once
}

// NewAPIServer returns a APIServer, its routes and workers are ready before Run
func NewAPIServer() *APIServer {
	s := &APIServer{
		e:      echo.New(),
		subMap: map[string]*JRPCSub{},
		reqCh:  make(chan *ReqData),
		done:   make(chan struct{}),
	}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	s.e.POST("/api/endpoints/http", s.handleHTTP)
	s.e.GET("/api/endpoints/websocket", s.handleWebsocket)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	for i := 0; i < workerCount; i++ {
		go s.work()
	}
	return s
}

// Handler returns the http handler of the apiserver
func (s *APIServer) Handler() http.Handler {
	return s.e
}

// Run starts web service of the apiserver
func (s *APIServer) Run(BindAddress string) error {
	rlog.Info("apiserver listening", "address", BindAddress)
	if err := s.e.Start(BindAddress); err != nil && err != http.ErrServerClosed {
		return errors.WithStack(err)
	}
	return nil
}

// Close stops the web service and the workers
func (s *APIServer) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.e.Shutdown(ctx)
	})
	return err
}

// JRPC provides the json rpc feature as a SubName.FunctionName methods
func (s *APIServer) JRPC(SubName string) (*JRPCSub, error) {
	s.Lock()
	defer s.Unlock()

	if _, has := s.subMap[SubName]; has {
		return nil, errors.WithStack(ErrExistSubName)
	}
	js := NewJRPCSub()
	s.subMap[SubName] = js
	return js, nil
}
