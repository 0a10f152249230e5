package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/addrummond/jsoncomplete"
	"github.com/addrummond/jsoncomplete/internal/log"
)

func newStreamCmd() *cobra.Command {
	var bracketOnly bool
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "stream [file]",
		Short: "Print a completed snapshot of the input after every chunk",
		Long: `Read the input in chunks and, after each chunk, print the completion of
everything read so far on its own line. Valid snapshots are compacted so that
each one fits on a single line.

If no file is provided, reads from stdin, printing snapshots as data arrives.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunkSize <= 0 {
				return fmt.Errorf("--chunk must be positive, got %d", chunkSize)
			}

			r, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			s := jsoncomplete.Stream{Completer: completer(bracketOnly)}
			return streamSnapshots(r, cmd.OutOrStdout(), &s, chunkSize)
		},
	}

	cmd.Flags().BoolVarP(&bracketOnly, "bracket-only", "b", envBool("JSONCOMPLETE_BRACKET_ONLY", false), "close open brackets in place instead of rolling back ambiguous tokens")
	cmd.Flags().IntVarP(&chunkSize, "chunk", "c", envInt("JSONCOMPLETE_CHUNK", 16), "maximum number of bytes read per snapshot")

	return cmd
}

func streamSnapshots(r io.Reader, w io.Writer, s *jsoncomplete.Stream, chunkSize int) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = s.Write(buf[:n])
			if werr := writeSnapshot(w, s); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

func writeSnapshot(w io.Writer, s *jsoncomplete.Stream) error {
	comp, err := s.Completion()
	if err != nil {
		return fmt.Errorf("after %d bytes: %w", s.Len(), err)
	}
	log.Debugf("%d bytes, path %v, suffix %q", s.Len(), comp.Path, comp.Suffix)

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(comp.Text)); err != nil {
		log.Warnf("snapshot after %d bytes does not parse: %v", s.Len(), err)
		_, err = fmt.Fprintln(w, comp.Text)
		return err
	}
	compact.WriteByte('\n')
	_, err = w.Write(compact.Bytes())
	return err
}
