package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"chat-gateway/domain/event"
	"chat-gateway/transport/ws"
)

// BaseWsSuite loads the environment configuration and provides websocket and
// HTTP helpers against a running gateway.
type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.GatewayAddr == "" {
		s.T().Skip("GATEWAY_ADDR not set, skipping e2e suite")
	}
}

// DialWs opens a websocket session against the gateway with a colorized
// header in the test log.
func (s *BaseWsSuite) DialWs(name string) *websocket.Conn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	url := fmt.Sprintf("ws://%s/ws", s.Config.GatewayAddr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err, "Failed to dial gateway at "+url)
	return conn
}

// SendRequest writes one inbound frame.
func (s *BaseWsSuite) SendRequest(conn *websocket.Conn, reqType ws.RequestType, body any) {
	req := ws.Request{Type: reqType}
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		req.Data = data
	}
	s.Require().NoError(conn.WriteJSON(req))
}

// NextEnvelope reads server pushes until one of the wanted type arrives.
func (s *BaseWsSuite) NextEnvelope(conn *websocket.Conn, want event.Type, timeout time.Duration) event.Envelope {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(timeout)))
	for {
		_, frame, err := conn.ReadMessage()
		s.Require().NoError(err, "expected an envelope of type %d", want)

		var env event.Envelope
		s.Require().NoError(json.Unmarshal(frame, &env))
		s.T().Logf("WS <- type=%d %s", env.Type, frame)
		if env.Type == want {
			return env
		}
	}
}

// PostCallback fires one of the login-flow callbacks and returns the status.
func (s *BaseWsSuite) PostCallback(path string) int {
	url := fmt.Sprintf("http://%s%s", s.Config.GatewayAddr, path)
	resp, err := http.Post(url, "", nil)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.T().Logf("POST %s [%d]", path, resp.StatusCode)
	return resp.StatusCode
}
