/*
Package suffine builds suffix arrays over texts too large to index in one
pass and answers substring queries against them. Construction sorts the text
in bounded blocks, spills each sorted block to storage and merges the blocks
into one array streamed to any io.Writer, so memory follows the block size
rather than the text size. The array can be reloaded from a flat file,
memory-mapped, and split into delimiter-separated documents.
*/
package suffine
