package panosapi

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skillet/internal/domain"
	"skillet/internal/ports"
)

// LoginError indicates the device rejected the supplied credentials
type LoginError struct {
	Host string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("authentication failed for %s", e.Host)
}

// ConnectionError indicates the device could not be reached or returned
// an unusable response
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Client talks to the device's XML API. It only reads: key generation,
// operational commands and configuration retrieval.
type Client struct {
	host     string
	username string
	password string
	port     int

	httpClient *http.Client
	baseURL    string
	apiKey     string
	facts      map[string]string
}

// Ensure Client implements Device
var _ ports.Device = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API endpoint, for tests
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// NewClient creates a client for the given device
func NewClient(host, username, password string, port int, opts ...Option) *Client {
	c := &Client{
		host:     host,
		username: username,
		password: password,
		port:     port,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				// Device API certificates are self-signed out of the box
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect generates an API key and gathers device facts
func (c *Client) Connect(ctx context.Context) error {
	result, err := c.request(ctx, url.Values{
		"type":     {"keygen"},
		"user":     {c.username},
		"password": {c.password},
	})
	if err != nil {
		return err
	}

	key := findText(result, "key")
	if key == "" {
		return &LoginError{Host: c.host}
	}
	c.apiKey = key

	return c.loadFacts(ctx)
}

// GetConfiguration retrieves the requested configuration document
func (c *Client) GetConfiguration(ctx context.Context, source ports.ConfigSource) (string, error) {
	if c.apiKey == "" {
		if err := c.Connect(ctx); err != nil {
			return "", err
		}
	}

	cmd := "show config running"
	if source == ports.SourceCandidate {
		cmd = "show config candidate"
	}

	result, err := c.op(ctx, cmd)
	if err != nil {
		return "", err
	}
	config := findChild(result, "config")
	if config == nil {
		return "", &ConnectionError{Host: c.host, Err: fmt.Errorf("no config element in %s response", cmd)}
	}
	return config.XML(), nil
}

// Facts returns identity facts gathered during Connect
func (c *Client) Facts(ctx context.Context) (map[string]string, error) {
	if c.facts == nil {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}
	return c.facts, nil
}

func (c *Client) loadFacts(ctx context.Context) error {
	result, err := c.op(ctx, "show system info")
	if err != nil {
		return err
	}

	facts := make(map[string]string)
	if system := findChild(result, "system"); system != nil {
		for _, child := range system.Children {
			if child.IsLeaf() {
				facts[child.Tag] = child.Text
			}
		}
	}
	c.facts = facts
	return nil
}

// op runs an operational command given in CLI form
func (c *Client) op(ctx context.Context, cmd string) (*domain.Node, error) {
	return c.request(ctx, url.Values{
		"type": {"op"},
		"cmd":  {cliToXML(cmd)},
		"key":  {c.apiKey},
	})
}

// request performs one API call and returns the result element
func (c *Client) request(ctx context.Context, params url.Values) (*domain.Node, error) {
	endpoint := c.baseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s:%d/api/", c.host, c.port)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(params.Encode()))
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}

	root, err := domain.ParseString(string(body))
	if err != nil {
		return nil, &ConnectionError{Host: c.host, Err: err}
	}
	if status, _ := root.Attr("status"); status != "success" {
		if resp.StatusCode == http.StatusForbidden || params.Get("type") == "keygen" {
			return nil, &LoginError{Host: c.host}
		}
		return nil, &ConnectionError{Host: c.host, Err: fmt.Errorf("API error: %s", errorMessage(root))}
	}

	if result := findChild(root, "result"); result != nil {
		return result, nil
	}
	return root, nil
}

// cliToXML converts an operational command from CLI form to the nested
// element form the API expects, e.g. "show system info" becomes
// <show><system><info></info></system></show>.
func cliToXML(cmd string) string {
	words := strings.Fields(cmd)
	var b strings.Builder
	for _, w := range words {
		fmt.Fprintf(&b, "<%s>", w)
	}
	for i := len(words) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "</%s>", words[i])
	}
	return b.String()
}

func findChild(n *domain.Node, tag string) *domain.Node {
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// findText returns the text of the first descendant with the given tag
func findText(n *domain.Node, tag string) string {
	if n.Tag == tag {
		return n.Text
	}
	for _, child := range n.Children {
		if text := findText(child, tag); text != "" {
			return text
		}
	}
	return ""
}

func errorMessage(root *domain.Node) string {
	if msg := findText(root, "msg"); msg != "" {
		return msg
	}
	if msg := findText(root, "line"); msg != "" {
		return msg
	}
	status, _ := root.Attr("status")
	return "status " + status
}
