// Package similarity implements the analysis pipeline: tokenization,
// per-batch vocabulary construction, TF-IDF vectorization and pairwise
// cosine similarity. The Engine is the driven adapter the orchestrator
// hands each document batch to.
package similarity
