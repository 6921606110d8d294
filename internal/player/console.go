package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rocketscienceinc/connect4-backend/internal/entity"
)

// Console reads column choices line by line and re-prompts until one is valid.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (that *Console) ReadColumn(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintf(that.out, "Column (0-%d): ", entity.Columns-1)

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return -1, errors.WithMessage(err, "read column")
			}
			return -1, io.EOF
		}

		column, err := strconv.Atoi(strings.TrimSpace(that.scanner.Text()))
		if err != nil || column < 0 || column >= entity.Columns {
			fmt.Fprintf(that.out, "Please enter a number between 0 and %d.\n", entity.Columns-1)
			continue
		}

		return column, nil
	}
}

func (that *Console) Println(message string) {
	fmt.Fprintln(that.out, message)
}
