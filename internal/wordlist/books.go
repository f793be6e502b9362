package wordlist

// DefaultBooks is the fixed list of Project Gutenberg texts the word list is
// built from. Callers pass it to Collect explicitly.
var DefaultBooks = []string{
	"Adventures of Huckleberry Finn.txt",
	"Frankenstein.txt",
	"Pride and Prejudice.txt",
	"The Kama Sutra of Vatsyayana.txt",
	"Alices Adventures in Wonderland.txt",
	"Grimms Fairy Tales.txt",
	"The Adventures of Sherlock Holmes.txt",
	"The Prince.txt",
	"Gullivers Travels.txt",
	"The Divine Comedy.txt",
}

// Books returns a copy of DefaultBooks.
func Books() []string {
	return append([]string(nil), DefaultBooks...)
}
