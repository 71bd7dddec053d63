package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/Shaheem-B/Oracle-AI-Assistant/internal/config"
)

// SendEmailTool sends mail through an authenticated SMTP relay.
// The three failure modes the user can act on get distinct messages:
// missing credentials, bad credentials, and everything else.
type SendEmailTool struct {
	host      string
	port      int
	user      string
	password  string
	userTitle string

	// send is the SMTP submission step, injectable for tests.
	send func(ctx context.Context, host string, port int, user, password string, msg *mail.Msg) error
}

// NewSendEmailTool creates the email tool. user/password may be empty;
// the tool then reports unconfigured credentials instead of dialing.
func NewSendEmailTool(cfg config.EmailConfig, user, password, userTitle string) *SendEmailTool {
	return &SendEmailTool{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		user:      user,
		password:  password,
		userTitle: userTitle,
		send:      smtpSend,
	}
}

func (t *SendEmailTool) Name() string { return "send_email" }
func (t *SendEmailTool) Description() string {
	return "Send an email through the user's Gmail account. Never claim an email was sent without calling this."
}

func (t *SendEmailTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"to_email": {"type": "string", "description": "Recipient address"},
			"subject": {"type": "string", "description": "Email subject"},
			"message": {"type": "string", "description": "Plain-text body"},
			"cc_email": {"type": "string", "description": "Optional CC address"}
		},
		"required": ["to_email", "subject", "message"]
	}`)
}

func (t *SendEmailTool) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var params struct {
		ToEmail string `json:"to_email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
		CCEmail string `json:"cc_email"`
	}
	if err := json.Unmarshal(args, &params); err != nil || params.ToEmail == "" {
		return &Result{Error: "to_email, subject and message are required", IsError: true}, nil
	}

	if t.user == "" || t.password == "" {
		return &Result{
			Output: fmt.Sprintf("Email sending failed: Gmail credentials not configured, %s.", t.userTitle),
		}, nil
	}

	msg := mail.NewMsg()
	if err := msg.From(t.user); err != nil {
		return t.genericFailure(err), nil
	}
	if err := msg.To(params.ToEmail); err != nil {
		return t.genericFailure(err), nil
	}
	if cc := strings.TrimSpace(params.CCEmail); cc != "" {
		if err := msg.Cc(cc); err != nil {
			return t.genericFailure(err), nil
		}
	}
	msg.Subject(params.Subject)
	msg.SetBodyString(mail.TypeTextPlain, params.Message)

	if err := t.send(ctx, t.host, t.port, t.user, t.password, msg); err != nil {
		if isAuthError(err) {
			return &Result{
				Output: fmt.Sprintf("Email sending failed: Authentication error. Check your Gmail App Password, %s.", t.userTitle),
			}, nil
		}
		return t.genericFailure(err), nil
	}

	return &Result{
		Output: fmt.Sprintf("Email sent successfully to %s, %s.", params.ToEmail, t.userTitle),
	}, nil
}

func (t *SendEmailTool) genericFailure(err error) *Result {
	log.Printf("[email] send failed: %v", err)
	return &Result{
		Output: fmt.Sprintf("An error occurred while sending the email, %s.", t.userTitle),
	}
}

// smtpSend submits the message over STARTTLS with PLAIN auth.
func smtpSend(ctx context.Context, host string, port int, user, password string, msg *mail.Msg) error {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// isAuthError detects SMTP authentication failures (535 and friends).
func isAuthError(err error) bool {
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "535") ||
		strings.Contains(lower, "auth") ||
		strings.Contains(lower, "username and password not accepted")
}
