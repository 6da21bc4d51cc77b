package hrx

import (
	"bytes"
	"fmt"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{
		scssArchive,
		boundaryArchive,
		"<===>\n",
		"<===>\ncomment only",
		"<===>\ncomment only\n",
		"<===> f\n",
		"<===> f\nbody",
		"<===> f\nbody\n",
		"<===> f\n\n<===> g\n",
		"<===> f\n<===> g\n",
		"<===> dir/\n",
		"<===> dir/\n<===> f\nx\n",
		"<===>\nroot\n<===>\nnote\n<===> f\nbody\n<===> g/\n",
		"<=====>\n<===> f\n",
		"<===> a\n<====>\n<===> b\n",
		"<======> file/sub\n<======> file\n",
		"<===>  leading space in path\n",
		"<===> хэнло/communism.exe\nпривет\n",
	}

	for _, text := range cases {
		arch, err := Parse(text)
		require.NoError(t, err, "input %q", text)

		var buf bytes.Buffer
		require.NoError(t, arch.Serialize(&buf), "input %q", text)
		require.Equal(t, buf.String(), text)
	}
}

func TestReparseSerialized(t *testing.T) {
	arch, err := New(3)
	require.NoError(t, err)

	arch.Comment = ptr("top level\n")
	arch.Entries.Set(mustPath(t, "a.txt"), &Entry{Comment: ptr("the a file"), Data: File{Body: ptr("aaa\n")}})
	arch.Entries.Set(mustPath(t, "dir"), &Entry{Data: Directory{}})
	arch.Entries.Set(mustPath(t, "empty"), &Entry{Data: File{Body: ptr("")}})
	arch.Entries.Set(mustPath(t, "last"), &Entry{Data: File{Body: ptr("zzz")}})

	text, err := arch.MarshalText()
	require.NoError(t, err)

	reparsed, err := Parse(string(text))
	require.NoError(t, err)
	require.Equal(t, reparsed, arch)
}

func TestConcurrentUse(t *testing.T) {
	shared, err := Parse(scssArchive)
	require.NoError(t, err)

	var group errgroup.Group
	for range 8 {
		group.Go(func() error {
			arch, err := Parse(scssArchive)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := arch.Serialize(&buf); err != nil {
				return err
			}

			if buf.String() != scssArchive {
				return fmt.Errorf("round trip mismatch")
			}

			// the shared archive is only ever read
			var out bytes.Buffer
			if err := shared.Serialize(&out); err != nil {
				return err
			}

			return shared.ValidateContent()
		})
	}

	require.NoError(t, group.Wait())
}
