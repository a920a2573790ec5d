// Package httpserver exposes the generated command and launch status on a
// local port, so the preview can be watched from a browser or scripted
// against while the controller runs.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/scrcpyctl/scrcpyctl/internal/command"
	"github.com/scrcpyctl/scrcpyctl/internal/config"
	"github.com/scrcpyctl/scrcpyctl/internal/logging"
	"github.com/scrcpyctl/scrcpyctl/internal/status"
)

var (
	Server    *http.Server
	templates *template.Template
	upgrader  = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	clients   = make(map[*websocket.Conn]bool)
	broadcast = make(chan status.Message, 16)
	mu        sync.Mutex

	// commandSource returns the current token list; set by StartServer.
	commandSource func() []string
	lastMessage   status.Message
)

// CommandResponse is the JSON body served by GET /command.
type CommandResponse struct {
	Tokens  []string `json:"tokens"`
	Command string   `json:"command"`
}

// TemplateData feeds the index page.
type TemplateData struct {
	Command string
	Version string
}

func init() {
	var err error
	templates, err = template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		panic(err)
	}
}

// StartServer starts the HTTP server on the specified port. source must
// return the current command tokens (nil when no executable is selected).
func StartServer(port int, source func() []string) {
	commandSource = source

	router := mux.NewRouter()
	router.HandleFunc("/", indexHandler)
	router.HandleFunc("/command", commandHandler)
	router.HandleFunc("/ws", handleWebSocket)

	addr := fmt.Sprintf(":%d", port)
	Server = &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start the WebSocket broadcaster
	go handleMessages()

	logging.InfoLogger.Printf("Starting status server on %s", addr)
	if err := Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.ErrorLogger.Printf("Failed to start status server: %v", err)
	}
}

// Publish pushes a status update to every connected WebSocket client.
func Publish(code, text string) {
	select {
	case broadcast <- status.Message{Code: code, Text: text}:
	default:
		logging.Trace("Dropping status broadcast %s: no room in channel", code)
	}
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	cmdLine := ""
	if tokens := commandSource(); tokens != nil {
		cmdLine = command.Join(tokens)
	}
	data := TemplateData{
		Command: cmdLine,
		Version: config.GetProgramVersion(),
	}
	if err := templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func commandHandler(w http.ResponseWriter, r *http.Request) {
	resp := CommandResponse{Tokens: []string{}}
	if tokens := commandSource(); tokens != nil {
		resp.Tokens = tokens
		resp.Command = command.Join(tokens)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.ErrorLogger.Printf("Failed to encode command response: %v", err)
	}
}

// handleWebSocket upgrades the HTTP connection and keeps it subscribed to
// status broadcasts until the peer goes away.
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.ErrorLogger.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	mu.Lock()
	clients[conn] = true
	// Send current status immediately after connection
	if lastMessage.Code != "" {
		if err := conn.WriteJSON(lastMessage); err != nil {
			logging.ErrorLogger.Printf("Failed to send initial status: %v", err)
		}
	}
	mu.Unlock()

	// Keep the connection alive until it closes
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	delete(clients, conn)
	mu.Unlock()
}

// handleMessages broadcasts status messages to all connected WebSocket clients
func handleMessages() {
	for msg := range broadcast {
		mu.Lock()
		lastMessage = msg
		logging.Trace("Broadcasting status: %s (code: %s)", msg.Text, msg.Code)

		for client := range clients {
			if err := client.WriteJSON(msg); err != nil {
				logging.ErrorLogger.Printf("WebSocket error: %v", err)
				client.Close()
				delete(clients, client)
			}
		}
		mu.Unlock()
	}
}

// StopServer gracefully shuts down the HTTP server
func StopServer() {
	if Server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Server.Shutdown(ctx); err != nil {
			logging.ErrorLogger.Printf("Status server forced to shutdown: %v", err)
		}
		logging.InfoLogger.Println("Status server stopped")
	}
}
