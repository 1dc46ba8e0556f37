// Package telegramtest поднимает фейковый Telegram Bot API для тестов
package telegramtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"
)

// Request запрос, принятый фейковым API
type Request struct {
	Token  string
	Method string
	Form   url.Values
}

// Param возвращает параметр запроса
func (r Request) Param(key string) string {
	return r.Form.Get(key)
}

// Responder формирует ответ на запрос: HTTP статус и JSON тело
type Responder func(req Request) (int, string)

// Server фейковый Telegram Bot API
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	requests      []Request
	responders    map[string]Responder
	delays        map[string]time.Duration
	nextMessageID int
}

// NewServer запускает сервер, который закрывается по окончании теста
func NewServer(t testing.TB) *Server {
	s := &Server{
		responders:    make(map[string]Responder),
		delays:        make(map[string]time.Duration),
		nextMessageID: 100,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Endpoint шаблон адреса для tgbotapi
func (s *Server) Endpoint() string {
	return s.URL + "/bot%s/%s"
}

// On задаёт ответ для метода
func (s *Server) On(method string, r Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responders[method] = r
}

// FailWith заставляет метод отвечать ошибкой Telegram
func (s *Server) FailWith(method string, status int, description string) {
	s.On(method, func(Request) (int, string) {
		return status, ErrorBody(status, description)
	})
}

// Delay задерживает ответы метода
func (s *Server) Delay(method string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[method] = d
}

// Requests возвращает все принятые запросы
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsFor возвращает запросы к одному методу
func (s *Server) RequestsFor(method string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// Last возвращает последний запрос
func (s *Server) Last() (Request, bool) {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return Request{}, false
	}
	return reqs[len(reqs)-1], true
}

// ErrorBody тело ответа Telegram с ошибкой
func ErrorBody(code int, description string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"ok":          false,
		"error_code":  code,
		"description": description,
	})
	return string(body)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/bot")
	token, method, _ := strings.Cut(path, "/")
	req := Request{Token: token, Method: method, Form: r.Form}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	responder := s.responders[method]
	delay := s.delays[method]
	s.nextMessageID++
	messageID := s.nextMessageID
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	status, body := http.StatusOK, ""
	if responder != nil {
		status, body = responder(req)
	} else {
		body = defaultResponse(req, messageID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func defaultResponse(req Request, messageID int) string {
	switch req.Method {
	case "sendMessage", "sendDocument", "sendPhoto":
		chatID := req.Param("chat_id")
		if chatID == "" {
			chatID = "0"
		}
		return fmt.Sprintf(`{"ok":true,"result":{"message_id":%d,"date":0,"chat":{"id":%s,"type":"group"}}}`, messageID, chatID)
	case "getFile":
		fileID := req.Param("file_id")
		return fmt.Sprintf(`{"ok":true,"result":{"file_id":%q,"file_unique_id":"u-%s","file_size":1024,"file_path":"documents/%s.pdf"}}`, fileID, fileID, fileID)
	default:
		return `{"ok":true,"result":true}`
	}
}
