package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Board dimensions served by the API
const (
	boardWidth  = 15
	boardHeight = 15
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board commands",
	}

	cmd.AddCommand(newBoardShowCmd())
	cmd.AddCommand(newBoardClickCmd())
	cmd.AddCommand(newBoardKeyCmd())
	cmd.AddCommand(newBoardPlaceCmd())
	cmd.AddCommand(newBoardRackCmd())
	cmd.AddCommand(newBoardGoCmd())
	cmd.AddCommand(newBoardCommandCmd("keep", "Keep the proposed move on the board"))
	cmd.AddCommand(newBoardCommandCmd("discard", "Discard the proposed move"))
	cmd.AddCommand(newBoardCommandCmd("clear", "Clear every board and rack letter"))

	return cmd
}

func printBoard(cmd *cobra.Command, b Board) {
	NewOutput(cfg.Output, cmd.OutOrStdout()).Print(b)
}

func newBoardShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the board, rack and proposed move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board
			if err := client.Get("/api/v1/board", &result); err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}
}

func newBoardClickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "click <target>",
		Short: "Click a cell (cell-N, rack-N) or a command (go, keep, discard, clear)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board
			if err := client.Post("/api/v1/board/click", map[string]string{"target": args[0]}, &result); err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}
}

func newBoardKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <key>",
		Short: "Press a key on the selected cell (a letter, space, Backspace or Escape)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board
			if err := client.Post("/api/v1/board/key", map[string]string{"key": args[0]}, &result); err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}
}

func newBoardPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <row> <col> <letter>",
		Short: "Put a letter on the board (? for a blank)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil || row < 0 || row >= boardHeight {
				return fmt.Errorf("invalid row %q: must be 0-%d", args[0], boardHeight-1)
			}
			col, err := strconv.Atoi(args[1])
			if err != nil || col < 0 || col >= boardWidth {
				return fmt.Errorf("invalid col %q: must be 0-%d", args[1], boardWidth-1)
			}
			key, err := letterKey(args[2])
			if err != nil {
				return err
			}

			result, err := enterLetter(fmt.Sprintf("cell-%d", row*boardWidth+col), key)
			if err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}
}

func newBoardRackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rack <slot> <letter>",
		Short: "Put a letter in a rack slot (? for a blank)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[0])
			if err != nil || slot < 0 {
				return fmt.Errorf("invalid slot %q", args[0])
			}
			key, err := letterKey(args[1])
			if err != nil {
				return err
			}

			result, err := enterLetter(fmt.Sprintf("rack-%d", slot), key)
			if err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}
}

func newBoardGoCmd() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "go",
		Short: "Ask the best-move service for the highest scoring play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/board/go"
			if wait {
				path += "?wait=true"
			}
			var result Board
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the best move before printing the board")

	return cmd
}

func newBoardCommandCmd(command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board
			if err := client.Post("/api/v1/board/"+command, nil, &result); err != nil {
				return err
			}
			printBoard(cmd, result)
			return nil
		},
	}
}

// enterLetter selects target then types key into it. Clicking an already
// selected cell deselects it, so a second click may be needed.
func enterLetter(target, key string) (Board, error) {
	var result Board
	for attempt := 0; attempt < 2; attempt++ {
		if err := client.Post("/api/v1/board/click", map[string]string{"target": target}, &result); err != nil {
			return result, err
		}
		if result.Selected != nil && *result.Selected == target {
			break
		}
	}
	if result.Selected == nil || *result.Selected != target {
		return result, fmt.Errorf("%s was not selected", target)
	}
	err := client.Post("/api/v1/board/key", map[string]string{"key": key}, &result)
	return result, err
}

// letterKey maps a letter argument to the key that types it
func letterKey(arg string) (string, error) {
	if arg == "?" {
		return " ", nil
	}
	letter := strings.ToUpper(arg)
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return "", fmt.Errorf("letter must be a single character A-Z or ?")
	}
	return letter, nil
}
