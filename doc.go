// Package socialnet generates synthetic social networks for testing graph
// tooling: a pool of unique person names and a set of unique, undirected
// friendships between them, written as a two-column TSV file.
//
// Layout:
//
//	core/          Edge canonicalisation and the thread-safe friendship Graph
//	generator/     NamePool, SampleEdges, Build and Verify (seedable, two strategies)
//	vocabulary/    first/last name sources: built-in, YAML file, go-randomdata
//	export/        TSV writer/reader, atomic file output, console preview
//	config/        SOCIALNET_* environment configuration (.env aware)
//	logger/        slog factory
//	cmd/socialnet  the command-line generator
//
// Quick example:
//
//	net, err := generator.Build(generator.Params{
//		PoolSize:   100,
//		EdgeCount:  300,
//		FirstNames: vocabulary.Default().FirstNames,
//		LastNames:  vocabulary.Default().LastNames,
//	}, generator.WithSeed(42))
//
// Every edge in net.Edges is canonical (A < B), joins two pool names, and
// appears once.
//
//	go install github.com/katalvlaran/socialnet/cmd/socialnet@latest
package socialnet
