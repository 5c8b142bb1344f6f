// Package fiveword extracts five-letter words from a word list.
//
// Each line of the source is trimmed, kept only when it is exactly five
// Unicode letters, and written to the destination in source order after
// the Turkish casing rules are applied:
//
//	ı -> I   (dotless stays dotless)
//	i -> İ   (dotted stays dotted)
//	then a locale-neutral uppercase of the rest
//
// # Basic Usage
//
// To run over the default file names:
//
//	stats, err := fiveword.Run(fiveword.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Accepted, "words written")
//
// To attach a logger:
//
//	s, err := fiveword.New(cfg, fiveword.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats, err := s.Run()
//
// [Sift] runs the same pass over any io.Reader and io.Writer.
//
// # Errors
//
// Failures wrap one of [ErrOpen], [ErrRead] or [ErrWrite] together with the
// underlying cause, so both can be matched with errors.Is. Lines that are
// not accepted are skipped and never reported. A failure after writing has
// started leaves the partial destination file on disk.
package fiveword
