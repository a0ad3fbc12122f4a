package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
	"github.com/meverselabs/presale/common/rlog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ReqData struct {
	req   *JRPCRequest
	resCh chan *JRPCResponse
}

func (s *APIServer) work() {
	for {
		select {
		case r := <-s.reqCh:
			r.resCh <- s.handleJRPC(r.req)
		case <-s.done:
			return
		}
	}
}

func (s *APIServer) dispatch(req *JRPCRequest) (*JRPCResponse, bool) {
	resCh := make(chan *JRPCResponse, 1)
	select {
	case s.reqCh <- &ReqData{req: req, resCh: resCh}:
	case <-s.done:
		return nil, false
	}
	return <-resCh, true
}

// numbers stay float64, big amounts are sent as decimal strings
func decodeRequest(data []byte) (*JRPCRequest, error) {
	var req JRPCRequest
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *APIServer) handleHTTP(c echo.Context) error {
	defer c.Request().Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(c.Request().Body); err != nil {
		return err
	}
	req, err := decodeRequest(buf.Bytes())
	if err != nil {
		return c.JSON(http.StatusBadRequest, &JRPCResponse{
			JSONRPC: "2.0",
			Error:   err.Error(),
		})
	}
	res, ok := s.dispatch(req)
	if !ok {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if res == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, res)
}

func (s *APIServer) handleWebsocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		req, err := decodeRequest(data)
		if err != nil {
			return err
		}
		res, ok := s.dispatch(req)
		if !ok {
			return nil
		}
		if res != nil {
			if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
				return err
			}
			if err := conn.WriteJSON(res); err != nil {
				return err
			}
		}
	}
}

func (s *APIServer) handleJRPC(req *JRPCRequest) *JRPCResponse {
	begin := time.Now()
	defer func() {
		RequestDuration.WithLabelValues(req.Method).Observe(time.Since(begin).Seconds())
	}()

	fail := func(err error) *JRPCResponse {
		RequestsTotal.WithLabelValues(req.Method, "error").Inc()
		if req.ID == nil {
			return nil
		}
		return &JRPCResponse{
			JSONRPC: req.JSONRPC,
			ID:      req.ID,
			Error:   err.Error(),
		}
	}

	ls := strings.SplitN(req.Method, ".", 2)
	if len(ls) != 2 {
		return fail(ErrInvalidMethod)
	}
	s.Lock()
	sub, has := s.subMap[ls[0]]
	s.Unlock()
	if !has {
		return fail(ErrInvalidMethod)
	}
	fn, has := sub.handler(ls[1])
	if !has {
		return fail(ErrInvalidMethod)
	}

	ret, err := fn(req.ID, NewArgument(req.Params))
	if err != nil {
		rlog.Debug("jrpc failed", "method", req.Method, "err", err)
		return fail(err)
	}
	RequestsTotal.WithLabelValues(req.Method, "ok").Inc()
	if req.ID == nil {
		return nil
	}
	return &JRPCResponse{
		JSONRPC: req.JSONRPC,
		ID:      req.ID,
		Result:  ret,
	}
}
