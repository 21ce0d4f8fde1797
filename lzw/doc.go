// Package lzw implements Lempel-Ziv-Welch dictionary coding of text.
//
// The dictionary starts with the 256 single-byte strings as codes 0 through
// 255 and gains one entry per emitted code.  It is never transmitted: the
// decoder rebuilds it from the code sequence alone.  There is no dictionary
// size limit and codes are plain integers, so this format is private to this
// package and not compatible with compress/lzw, GIF or TIFF.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Lempel%E2%80%93Ziv%E2%80%93Welch>
package lzw
