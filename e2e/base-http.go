package e2e

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"

	"cloudmeet-client/e2e/fakeserver"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config  Config
	backend *fakeserver.Server
	baseURL string
}

// SetupSuite loads the environment configuration and resolves the
// backend: an external one when E2E_BASE_URL is set, otherwise an
// in-process fake conference backend.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.BaseURL != "" {
		s.baseURL = s.Config.BaseURL
		return
	}
	s.backend = fakeserver.New()
	s.baseURL = s.backend.URL()
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.backend != nil {
		s.backend.Close()
	}
}

func (s *BaseHTTPSuite) BaseURL() string {
	return s.baseURL
}

// Step prints a colorized header so the flow of a scenario stays
// readable in the test logs.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// HTTPClient builds an http.Client whose transport logs every call,
// with full JSON bodies when E2E_DEBUG_JSON is enabled.
func (s *BaseHTTPSuite) HTTPClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		Transport: &loggingTransport{
			suite: s,
			next:  http.DefaultTransport,
		},
	}
}

type loggingTransport struct {
	suite *BaseHTTPSuite
	next  http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	var reqBody []byte
	if t.suite.Config.DebugJSON && req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	resp, err := t.next.RoundTrip(req)

	logBuilder := strings.Builder{}
	if err != nil {
		fmt.Fprintf(&logBuilder, "HTTP %s %s [transport error] in %v", req.Method, req.URL.Path, time.Since(start))
	} else {
		fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	}

	// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
	if t.suite.Config.DebugJSON {
		if len(reqBody) > 0 {
			fmt.Fprintln(&logBuilder, "\nREQUEST:")
			fmt.Fprintln(&logBuilder, string(reqBody))
		}
		if err != nil {
			fmt.Fprintln(&logBuilder, "ERROR:", err)
		} else if resp.Body != nil {
			respBody, readErr := io.ReadAll(resp.Body)
			if readErr == nil {
				resp.Body = io.NopCloser(bytes.NewReader(respBody))
				fmt.Fprintln(&logBuilder, "RESPONSE:")
				fmt.Fprintln(&logBuilder, string(respBody))
			}
		}
	}
	t.suite.T().Log(logBuilder.String())
	return resp, err
}
