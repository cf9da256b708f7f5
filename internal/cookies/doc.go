package cookies

// Package cookies exports authentication cookies from an installed browser
// into a Netscape-format cookies.txt, the file format the extraction library
// accepts for protected or private content.
