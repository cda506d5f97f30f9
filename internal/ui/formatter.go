package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"aide/internal/calendar"
	"aide/internal/email"
	"aide/internal/reminder"
)

var (
	UserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Bright cyan
			Bold(true)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")) // Soft green

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	SystemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")). // Soft purple
			Italic(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)
)

type Formatter struct {
	colored bool
}

func NewFormatter(colored bool) *Formatter {
	return &Formatter{colored: colored}
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

func (f *Formatter) FormatSuccess(msg string) string {
	if f.colored {
		return SuccessStyle.Render("✓") + " " + msg
	}
	return "✓ " + msg
}

func (f *Formatter) FormatSystem(msg string) string {
	if f.colored {
		return SystemStyle.Render(msg)
	}
	return msg
}

func (f *Formatter) FormatPrompt() string {
	if f.colored {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
		arrowStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)
		return promptStyle.Render("you") + arrowStyle.Render(" > ")
	}
	return "you > "
}

// FormatMarkdown renders assistant output as terminal-friendly text.
func (f *Formatter) FormatMarkdown(content string) string {
	if !f.colored {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(rendered)
}

// FormatReminder renders one reminder as a listing line.
func (f *Formatter) FormatReminder(rec reminder.Reminder) string {
	mark := "[ ]"
	if rec.Completed {
		mark = "[x]"
	}

	line := fmt.Sprintf("%s #%d %s", mark, rec.ID, rec.Title)

	var tags []string
	if rec.DueDate != "" {
		tags = append(tags, "due "+rec.DueDate)
	}
	tags = append(tags, string(rec.Priority))

	suffix := " (" + strings.Join(tags, ", ") + ")"
	if f.colored {
		if rec.Completed {
			line = DimStyle.Render(line)
		} else if rec.Priority == reminder.PriorityHigh {
			line = WarningStyle.Render(line)
		}
		suffix = DimStyle.Render(suffix)
	}

	return line + suffix
}

// FormatReminderList renders a listing, with a placeholder for an empty
// one.
func (f *Formatter) FormatReminderList(reminders []reminder.Reminder) string {
	if len(reminders) == 0 {
		return f.FormatInfo("No reminders.")
	}

	lines := make([]string, 0, len(reminders))
	for _, rec := range reminders {
		lines = append(lines, f.FormatReminder(rec))
	}
	return strings.Join(lines, "\n")
}

// FormatSummary renders the reminder status counters.
func (f *Formatter) FormatSummary(sum reminder.Summary) string {
	header := "Reminders"
	if f.colored {
		header = HeaderStyle.Render(header)
	}

	lines := []string{
		header,
		fmt.Sprintf("  total: %d  pending: %d  completed: %d", sum.Total, sum.Pending, sum.Completed),
		fmt.Sprintf("  pending by priority: high=%d medium=%d low=%d",
			sum.ByPriority[reminder.PriorityHigh],
			sum.ByPriority[reminder.PriorityMedium],
			sum.ByPriority[reminder.PriorityLow]),
	}
	return strings.Join(lines, "\n")
}

// FormatEvent renders one calendar event as a listing line.
func (f *Formatter) FormatEvent(ev calendar.Event) string {
	var when string
	if ev.AllDay {
		when = ev.Start.Format("Mon Jan 2") + " (all day)"
	} else {
		when = fmt.Sprintf("%s - %s",
			ev.Start.Local().Format("Mon Jan 2 15:04"),
			ev.End.Local().Format("15:04"))
	}

	line := fmt.Sprintf("%s  %s", when, ev.Title)
	if ev.Location != "" {
		loc := " @ " + ev.Location
		if f.colored {
			loc = DimStyle.Render(loc)
		}
		line += loc
	}
	return line
}

// FormatEventList renders upcoming events.
func (f *Formatter) FormatEventList(events []calendar.Event) string {
	if len(events) == 0 {
		return f.FormatInfo("No upcoming events.")
	}

	lines := make([]string, 0, len(events))
	for _, ev := range events {
		lines = append(lines, f.FormatEvent(ev))
	}
	return strings.Join(lines, "\n")
}

// FormatEnvelope renders one inbox entry.
func (f *Formatter) FormatEnvelope(env email.Envelope) string {
	mark := " "
	if env.Unread {
		mark = "*"
	}

	date := env.Date.Local().Format("Jan 2 15:04")
	line := fmt.Sprintf("%s %s  %-25s %s", mark, date, truncate(env.From, 25), env.Subject)
	if f.colored && env.Unread {
		return UserStyle.Render(line)
	}
	return line
}

// FormatEnvelopeList renders an inbox listing.
func (f *Formatter) FormatEnvelopeList(envelopes []email.Envelope) string {
	if len(envelopes) == 0 {
		return f.FormatInfo("No emails.")
	}

	lines := make([]string, 0, len(envelopes))
	for _, env := range envelopes {
		lines = append(lines, f.FormatEnvelope(env))
	}
	return strings.Join(lines, "\n")
}

// FormatMessage renders a full email with its headers and body.
func (f *Formatter) FormatMessage(msg email.Message) string {
	header := []string{
		"From: " + msg.Envelope.From,
		"Date: " + msg.Envelope.Date.Local().Format("Mon Jan 2 15:04"),
		"Subject: " + msg.Envelope.Subject,
	}

	head := strings.Join(header, "\n")
	if f.colored {
		head = HeaderStyle.Render(head)
	}

	body := strings.TrimSpace(msg.Body)
	if body == "" {
		body = f.FormatInfo("(no text body)")
	}

	return head + "\n\n" + body
}

// FormatTokenUsage renders a request's token counters and duration.
func (f *Formatter) FormatTokenUsage(input, output int, duration time.Duration) string {
	msg := fmt.Sprintf("(tokens: input=%d, output=%d", input, output)
	if duration > 0 {
		msg += fmt.Sprintf(" | time: %s", formatDuration(duration))
	}
	msg += ")"

	if f.colored {
		return DimStyle.Render(msg)
	}
	return msg
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// truncate shortens s to max visible characters, counting runes so a
// multibyte name is never cut mid-sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
