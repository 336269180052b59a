package google

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// CodeProvider obtains an authorization code from the user after directing
// them to the given authorization URL. Implementations decide the channel:
// a terminal prompt, or the HTTP-fed PendingAuthorization broker.
type CodeProvider interface {
	RequestCode(ctx context.Context, authUrl string) (string, error)
}

// StdinCodeProvider prompts on a terminal and reads the pasted code.
type StdinCodeProvider struct {
	In  io.Reader
	Out io.Writer
}

func (p *StdinCodeProvider) RequestCode(ctx context.Context, authUrl string) (string, error) {
	fmt.Fprintf(p.Out, "\nGo to the following link in your browser\n%s\n\nPaste the authorization code: ", authUrl)

	reader := bufio.NewReader(p.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read authorization code: %w", err)
	}
	return strings.TrimSpace(line), nil
}
