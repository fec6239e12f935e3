// Package control provides the head layer of the binary format.
//
// Every item starts with a head: an initial byte whose top three bits are the
// major type and whose low five bits are the additional information. The
// additional information either holds the argument directly or says how many
// bytes of argument follow.
//
// Head Layout
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Following | Argument            |
//  |-----------|-------------------||-----------|---------------------|
//  | major     | 0 .. 23           || 0 bytes   | the info value      |
//  | major     | 24                || 1 byte    | up to 2^8 - 1       |
//  | major     | 25                || 2 bytes   | up to 2^16 - 1      |
//  | major     | 26                || 4 bytes   | up to 2^32 - 1      |
//  | major     | 27                || 8 bytes   | up to 2^64 - 1      |
//  | major     | 28 .. 30          || reserved  | always rejected     |
//  | major     | 31                || -         | indefinite, rejected|
//  |-----------|-------------------||-----------|---------------------|
//
// Arguments are big-endian. The encoder always picks the smallest size class
// that holds the argument, so every argument has exactly one encoding:
//
//  | Argument            | Size class | Head bytes |
//  |---------------------|------------|------------|
//  | 0 .. 23             | d          | 1          |
//  | 24 .. 255           | a1         | 2          |
//  | 256 .. 65535        | a2         | 3          |
//  | 65536 .. 2^32 - 1   | a4         | 5          |
//  | 2^32 .. 2^64 - 1    | a8         | 9          |
//
// Major Types
//
//  | Major | Abbr | Meaning                                     |
//  |-------|------|---------------------------------------------|
//  | 0     | u    | unsigned integer n                          |
//  | 1     | n    | negative integer -1 - n                     |
//  | 2     | b    | byte string of n bytes                      |
//  | 3     | t    | text string of n bytes                      |
//  | 4     | a    | array of n items                            |
//  | 5     | m    | map of n pairs                              |
//  | 6     | g    | tag n followed by one item                  |
//  | 7     | s    | simple value or float (width from the class) |
//
// In major type 7 the size classes a2, a4 and a8 carry IEEE binary16, binary32
// and binary64 bit patterns. Those are fixed width, so the size class rule
// does not apply to them.
//
// The decoder tracks arrays, maps and tags on a Stack of frames so callers
// can tell when nested content is complete and skip items they do not
// understand.
package control
