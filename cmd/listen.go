package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/harmonfunc/analysis"
	"github.com/jsphweid/harmonfunc/chord"
	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/logger"
	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	addKeyFlag(listenCmd)
	addVerbosityFlag(listenCmd)
	listenCmd.Flags().IntP("port", "p", 0, "MIDI in port number")
	listenCmd.Flags().Duration("debounce", 80*time.Millisecond, "wait this long after the last note before labelling")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Labels chords played on a MIDI keyboard",
	Long:  `Listens to a MIDI in port and prints the label of the held notes whenever they settle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := keyFlag(cmd)
		if err != nil {
			return err
		}
		v, err := verbosityFlag(cmd)
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetInt("port")
		wait, _ := cmd.Flags().GetDuration("debounce")

		defer midi.CloseDriver()
		in, err := midi.InPort(port)
		if err != nil {
			return fmt.Errorf("can't find MIDI in port %d: %w", port, err)
		}

		l := newListener(cmd.OutOrStdout(), k, v, wait)
		stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				l.press(key)
			case msg.GetNoteEnd(&ch, &key):
				l.release(key)
			}
		})
		if err != nil {
			return err
		}
		defer stop()

		logger.Info("Listening", logger.Fields{"port": in.String(), "key": k.String()})
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		<-ctx.Done()
		return nil
	},
}

// listener tracks held notes and prints a label once they stop changing.
type listener struct {
	mu        sync.Mutex
	onNotes   chord.OnNotes
	lastKey   string
	w         io.Writer
	key       pitch.Key
	verbosity harmony.Verbosity
	debounced func(f func())
}

func newListener(w io.Writer, k pitch.Key, v harmony.Verbosity, wait time.Duration) *listener {
	return &listener{
		onNotes:   make(chord.OnNotes),
		w:         w,
		key:       k,
		verbosity: v,
		debounced: debounce.New(wait),
	}
}

func (l *listener) press(note uint8) {
	l.mu.Lock()
	l.onNotes[note] = true
	l.mu.Unlock()
	l.debounced(l.flush)
}

func (l *listener) release(note uint8) {
	l.mu.Lock()
	delete(l.onNotes, note)
	l.mu.Unlock()
	l.debounced(l.flush)
}

// flush prints the label of the held notes if they differ from the last printed set.
func (l *listener) flush() {
	l.mu.Lock()
	notes := chord.Held(l.onNotes)
	chordKey := chord.CreateChordKey(notes)
	if len(notes) == 0 || chordKey == l.lastKey {
		l.lastKey = chordKey
		l.mu.Unlock()
		return
	}
	l.lastKey = chordKey
	l.mu.Unlock()

	lc, err := analysis.LabelNotes(l.key, notes)
	if err != nil {
		logger.Warn("Could not label held notes", logger.Fields{"notes": chordKey, "error": err.Error()})
		return
	}
	label := lc.Label
	if l.verbosity == harmony.Verbose {
		label = lc.VerboseLabel
	}
	fmt.Fprintf(l.w, "%-24v %v\n", fmt.Sprint(lc.Pitches), label)
}
