package email

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-message/mail"

	"aide/internal/config"
)

// Client connects to an IMAP mailbox and fetches messages.
type Client struct {
	host     string
	port     string
	username string
	password string
	tls      bool
}

// NewClient creates an IMAP client from the email configuration.
func NewClient(cfg config.EmailConfig) *Client {
	return &Client{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		tls:      cfg.TLS,
	}
}

// connect dials the server and authenticates. The caller must call
// Logout on the returned client.
func (c *Client) connect(_ context.Context) (*imapclient.Client, error) {
	addr := c.host + ":" + c.port

	var client *imapclient.Client
	var err error

	if c.tls {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialStartTLS(addr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, fmt.Errorf("authentication failed for %s: %w", c.username, err)
	}

	return client, nil
}

// FetchRecent selects INBOX and returns envelopes for messages received
// in the last sinceDays days, newest last, capped at limit.
func (c *Client) FetchRecent(ctx context.Context, sinceDays, limit int) ([]Envelope, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		return nil, fmt.Errorf("selecting INBOX: %w", err)
	}

	criteria := &imap.SearchCriteria{
		Since: time.Now().AddDate(0, 0, -sinceDays),
	}

	searchData, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	if limit > 0 && len(uids) > limit {
		uids = uids[len(uids)-limit:]
	}

	fetchCmd := client.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		Envelope: true,
		Flags:    true,
		UID:      true,
	})
	defer fetchCmd.Close()

	var envelopes []Envelope
	for {
		msg := fetchCmd.Next()
		if msg == nil {
			break
		}

		buf, err := msg.Collect()
		if err != nil {
			continue
		}

		envelopes = append(envelopes, envelopeFromBuffer(buf))
	}

	if err := fetchCmd.Close(); err != nil {
		return envelopes, fmt.Errorf("fetching envelopes: %w", err)
	}

	return envelopes, nil
}

// FetchUnread returns envelopes for unseen messages in INBOX, capped at
// limit.
func (c *Client) FetchUnread(ctx context.Context, limit int) ([]Envelope, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		return nil, fmt.Errorf("selecting INBOX: %w", err)
	}

	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
	}

	searchData, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	if limit > 0 && len(uids) > limit {
		uids = uids[len(uids)-limit:]
	}

	fetchCmd := client.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		Envelope: true,
		Flags:    true,
		UID:      true,
	})
	defer fetchCmd.Close()

	var envelopes []Envelope
	for {
		msg := fetchCmd.Next()
		if msg == nil {
			break
		}

		buf, err := msg.Collect()
		if err != nil {
			continue
		}

		envelopes = append(envelopes, envelopeFromBuffer(buf))
	}

	if err := fetchCmd.Close(); err != nil {
		return envelopes, fmt.Errorf("fetching envelopes: %w", err)
	}

	return envelopes, nil
}

// FetchMessage downloads the full message for uid and extracts its
// plain-text body. The fetch uses Peek so the message keeps its unread
// flag.
func (c *Client) FetchMessage(ctx context.Context, uid uint32) (*Message, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		return nil, fmt.Errorf("selecting INBOX: %w", err)
	}

	bodySection := &imap.FetchItemBodySection{Peek: true}

	fetchCmd := client.Fetch(imap.UIDSetNum(imap.UID(uid)), &imap.FetchOptions{
		Envelope:    true,
		Flags:       true,
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	})
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, fmt.Errorf("message UID %d not found", uid)
	}

	buf, err := msg.Collect()
	if err != nil {
		return nil, fmt.Errorf("collecting message data: %w", err)
	}

	result := &Message{Envelope: envelopeFromBuffer(buf)}

	if raw := buf.FindBodySection(bodySection); raw != nil {
		result.Body = extractTextBody(raw)
	}

	if err := fetchCmd.Close(); err != nil {
		return result, fmt.Errorf("closing fetch: %w", err)
	}

	return result, nil
}

func envelopeFromBuffer(buf *imapclient.FetchMessageBuffer) Envelope {
	env := Envelope{
		UID:    uint32(buf.UID),
		Unread: true,
	}

	if buf.Envelope != nil {
		env.Subject = buf.Envelope.Subject
		env.Date = buf.Envelope.Date

		if len(buf.Envelope.From) > 0 {
			from := buf.Envelope.From[0]
			if from.Name != "" {
				env.From = from.Name
			} else {
				env.From = from.Addr()
			}
		}
	}

	for _, flag := range buf.Flags {
		if flag == imap.FlagSeen {
			env.Unread = false
		}
	}

	return env
}

// extractTextBody parses a raw RFC 2822 message and returns its
// text/plain part, falling back to the raw bytes when parsing fails.
func extractTextBody(raw []byte) string {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}
	defer mr.Close()

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if h, ok := part.Header.(*mail.InlineHeader); ok {
			contentType, _, _ := h.ContentType()
			if strings.HasPrefix(contentType, "text/plain") {
				body, readErr := io.ReadAll(part.Body)
				if readErr != nil {
					continue
				}
				return string(body)
			}
		}
	}

	return ""
}
