package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/do"
)

type Client struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewClient(_ *do.Injector) (*Client, error) {
	return New(os.Stdin, os.Stdout), nil
}

func New(r io.Reader, w io.Writer) *Client {
	return &Client{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Prompt writes prompt without a newline and reads one line.
// The trailing line break is stripped. io.EOF is returned only when
// the stream ended before any character of the line was read.
func (c *Client) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(c.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Client) Say(text string) error {
	if _, err := fmt.Fprintln(c.writer, text); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
