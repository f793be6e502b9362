package wordlist_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wordlist/internal/textutil"
	"wordlist/internal/wordlist"
)

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestCollectUnionsSources(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"a.txt": "Don't stop-now. Don't!",
		"b.txt": "STOP now... it's its",
	})
	c := wordlist.NewCollector(wordlist.WithBaseDir(dir))

	result, err := c.Collect(context.Background(), []string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := []string{"dont", "its", "now", "stop", "stopnow"}
	if diff := cmp.Diff(want, result.Words.Words(true)); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}

	if len(result.Sources) != 2 {
		t.Fatalf("expected 2 source stats, got %d", len(result.Sources))
	}
	first, second := result.Sources[0], result.Sources[1]
	if first.Path != filepath.Join(dir, "a.txt") || first.Tokens != 3 || first.UniqueWords != 2 || first.NewWords != 2 {
		t.Fatalf("unexpected first stats: %+v", first)
	}
	if second.Tokens != 4 || second.UniqueWords != 3 || second.NewWords != 3 {
		t.Fatalf("unexpected second stats: %+v", second)
	}
	if result.Tokens() != 7 {
		t.Fatalf("Tokens = %d, want 7", result.Tokens())
	}
}

func TestCollectKeepsEmptyWord(t *testing.T) {
	dir := writeSources(t, map[string]string{"dots.txt": "hello ... world"})
	result, err := wordlist.NewCollector(wordlist.WithBaseDir(dir)).Collect(context.Background(), []string{"dots.txt"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !result.Words.Has("") {
		t.Fatal("expected a letterless token to contribute the empty word")
	}
}

func TestCollectMissingSourceFails(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.txt": "present"})
	c := wordlist.NewCollector(wordlist.WithBaseDir(dir))

	_, err := c.Collect(context.Background(), []string{"a.txt", "missing.txt"})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	var srcErr *wordlist.SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %T", err)
	}
	if srcErr.Op != "open" || srcErr.Path != filepath.Join(dir, "missing.txt") {
		t.Fatalf("unexpected source error: %+v", srcErr)
	}
	if n := strings.Count(err.Error(), srcErr.Path); n != 1 {
		t.Fatalf("expected path once in %q, found %d times", err.Error(), n)
	}
}

func TestSourceErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *wordlist.SourceError
		want string
	}{
		{
			name: "path error keeps its own path",
			err: &wordlist.SourceError{Path: "/books/a.txt", Op: "open",
				Err: &fs.PathError{Op: "open", Path: "/books/a.txt", Err: fs.ErrNotExist}},
			want: "open /books/a.txt: file does not exist",
		},
		{
			name: "plain error gets the path",
			err:  &wordlist.SourceError{Path: "/books/a.txt", Op: "decode", Err: errors.New("bad bytes")},
			want: "decode /books/a.txt: bad bytes",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCollectRejectsInvalidUTF8(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.txt": "ab\xffcd ok"})
	c := wordlist.NewCollector(wordlist.WithBaseDir(dir))

	result, err := c.Collect(context.Background(), []string{"a.txt"})
	if err == nil {
		t.Fatalf("expected decode error, got words %v", result.Words.Words(true))
	}
	if !errors.Is(err, textutil.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	var srcErr *wordlist.SourceError
	if !errors.As(err, &srcErr) || srcErr.Op != "decode" || srcErr.Path != filepath.Join(dir, "a.txt") {
		t.Fatalf("expected decode SourceError, got %v", err)
	}
}

func TestCollectDirectoryAsSourceFails(t *testing.T) {
	dir := writeSources(t, nil)
	if err := os.Mkdir(filepath.Join(dir, "book.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := wordlist.NewCollector(wordlist.WithBaseDir(dir)).Collect(context.Background(), []string{"book.txt"})
	var srcErr *wordlist.SourceError
	if !errors.As(err, &srcErr) || srcErr.Op != "read" {
		t.Fatalf("expected read SourceError, got %v", err)
	}
}

func TestCollectNoSources(t *testing.T) {
	_, err := wordlist.NewCollector().Collect(context.Background(), nil)
	if !errors.Is(err, wordlist.ErrNoSources) {
		t.Fatalf("expected ErrNoSources, got %v", err)
	}
}

func TestCollectCanceled(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.txt": "words"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := wordlist.NewCollector(wordlist.WithBaseDir(dir)).Collect(ctx, []string{"a.txt"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCollectDecodesLatin1(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "l1.txt"), []byte{'c', 'a', 'f', 0xe9, ' ', 'O', 'K'}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	enc, err := textutil.LookupEncoding("latin1")
	if err != nil {
		t.Fatalf("LookupEncoding: %v", err)
	}
	result, err := wordlist.NewCollector(wordlist.WithBaseDir(dir), wordlist.WithEncoding(enc)).
		Collect(context.Background(), []string{"l1.txt"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if diff := cmp.Diff([]string{"caf", "ok"}, result.Words.Words(true)); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectStripsUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Chapter")...)
	if err := os.WriteFile(filepath.Join(dir, "bom.txt"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	result, err := wordlist.NewCollector(wordlist.WithBaseDir(dir)).Collect(context.Background(), []string{"bom.txt"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !result.Words.Has("chapter") || result.Words.Len() != 1 {
		t.Fatalf("unexpected words: %v", result.Words.Words(true))
	}
}

func TestRunWritesOutput(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"a.txt": "The Prince. the prince's",
		"b.txt": "Alice/Wonderland: THE END",
	})
	out := filepath.Join(t.TempDir(), "word_list.txt")
	c := wordlist.NewCollector(wordlist.WithBaseDir(dir))
	job := wordlist.Job{Sources: []string{"a.txt", "b.txt"}, Output: out, Sorted: true}

	result, err := c.Run(context.Background(), job)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "alicewonderland\nend\nprince\nprinces\nthe\n"
	if string(data) != want {
		t.Fatalf("output = %q, want %q", data, want)
	}
	if result.Words.Len() != 5 {
		t.Fatalf("unexpected word count %d", result.Words.Len())
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if seen[line] {
			t.Fatalf("duplicate line %q", line)
		}
		seen[line] = true
	}
}

func TestRunIsRepeatable(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.txt": "one two Two three-four o'clock"})
	outDir := t.TempDir()
	c := wordlist.NewCollector(wordlist.WithBaseDir(dir))

	readSet := func(name string) map[string]bool {
		path := filepath.Join(outDir, name)
		if _, err := c.Run(context.Background(), wordlist.Job{Sources: []string{"a.txt"}, Output: path}); err != nil {
			t.Fatalf("Run: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		set := make(map[string]bool)
		for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
			set[line] = true
		}
		return set
	}

	if diff := cmp.Diff(readSet("first.txt"), readSet("second.txt")); diff != "" {
		t.Fatalf("runs produced different sets (-first +second):\n%s", diff)
	}
}

func TestRunMissingSourceDoesNotWrite(t *testing.T) {
	dir := writeSources(t, map[string]string{"a.txt": "present"})
	out := filepath.Join(t.TempDir(), "word_list.txt")

	_, err := wordlist.NewCollector(wordlist.WithBaseDir(dir)).Run(context.Background(), wordlist.Job{
		Sources: []string{"a.txt", "gone.txt"},
		Output:  out,
	})
	if err == nil {
		t.Fatal("expected Run to fail")
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("output must not be written, stat err=%v", statErr)
	}
}

func TestBooksReturnsCopy(t *testing.T) {
	books := wordlist.Books()
	if len(books) != 10 {
		t.Fatalf("expected 10 books, got %d", len(books))
	}
	books[0] = "changed"
	if wordlist.DefaultBooks[0] != "Adventures of Huckleberry Finn.txt" {
		t.Fatal("Books must not alias DefaultBooks")
	}
}
