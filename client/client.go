package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"

	"chat-gateway/domain/event"
	"chat-gateway/transport/ws"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerURL string `env:"GATEWAY_WS_URL,default=ws://localhost:8090/ws"`
	Token     string `env:"GATEWAY_TOKEN"`
	LogLevel  string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run dials the gateway, authorizes when a token is configured or requests a
// login code otherwise, then renders every push until interrupted.
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	conn, _, err := websocket.DefaultDialer.Dial(config.ServerURL, nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("dial %s: %w", config.ServerURL, err)
	}
	defer conn.Close()
	log.Info("Connected", "url", config.ServerURL)

	if config.Token != "" {
		err = writeRequest(conn, ws.RequestAuthorize, ws.AuthorizeRequest{Token: config.Token})
	} else {
		err = writeRequest(conn, ws.RequestLogin, nil)
	}
	if err != nil {
		return exitRuntime, err
	}

	done := make(chan error, 1)
	go func() {
		for {
			_, frame, err := conn.ReadMessage()
			if err != nil {
				done <- err
				return
			}
			render(frame)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sig:
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		return exitOK, nil
	case err := <-done:
		return exitRuntime, err
	}
}

func writeRequest(conn *websocket.Conn, reqType ws.RequestType, body any) error {
	req := ws.Request{Type: reqType}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req.Data = data
	}
	return conn.WriteJSON(req)
}

// render pretty-prints one push envelope.
func render(frame []byte) {
	var env event.Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		color.Gray.Printf("?? %s\n", frame)
		return
	}
	switch env.Type {
	case event.TypeLoginURL:
		color.Cyan.Printf("scan to login: %s\n", frame)
	case event.TypeLoginScanSuccess:
		color.Yellow.Println("scan confirmed, waiting for approval...")
	case event.TypeLoginSuccess:
		color.Green.Printf("login success: %s\n", frame)
	case event.TypeInvalidateToken:
		color.Red.Println("token rejected, please login again")
	case event.TypeOnlineOfflineNotify:
		color.Magenta.Printf("presence: %s\n", frame)
	case event.TypeMessage:
		color.White.Printf("message: %s\n", frame)
	default:
		color.Gray.Printf("type=%d %s\n", env.Type, frame)
	}
}
