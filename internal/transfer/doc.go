package transfer

// Package transfer copies the collected input files into the working folder
// (via github.com/otiai10/copy). Files are copied one at a time and the batch
// stops at the first failure, reporting the failing source path.
