package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/primezone/internal/common"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetAccessKey prints a prompt to w and reads an access key from the
// terminal without echo. Surrounding whitespace is trimmed. A newline is
// printed after the read to keep the UI tidy. The raw buffer is wiped.
func GetAccessKey(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "SUA CHAVE: "); err != nil {
		return "", err
	}
	key, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(key)
	return strings.TrimSpace(string(key)), nil
}
