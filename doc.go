// Package searchadvisor helps choose an uninformed graph-search algorithm.
//
// Given four yes/no answers about a problem (is a heuristic available, does
// the space contain infinite-length paths, must the solution be
// shortest-length, must it be lowest-cost) it eliminates the algorithms whose
// documented properties cannot satisfy them and reports the survivors with
// their time/space complexity and a short description.
//
// Layout:
//
//	catalogue/          Algorithm records, tri-state optimality enums, Filter & Evaluate
//	internal/prompt/    the four questions; line reader and terminal-form prompters
//	internal/render/    text, json, yaml and lipgloss "pretty" reports
//	internal/config/    viper-backed settings (file, SEARCHADVISOR_* env, flags)
//	internal/logger/    zap-backed structured logging to stderr
//	cmd/searchadvisor/  cobra CLI: root (advise), list, version
//
// The canonical catalogue:
//
//	Breadth-first search        length-optimal, handles infinite paths
//	Depth-first search          neither
//	Depth-limited search        handles infinite paths
//	Iterative deepening search  tunable to length-optimal, handles infinite paths
//
// None of them guarantees a lowest-cost solution, so a cost-optimal
// requirement yields "No candidate algorithms can satisfy this problem's
// requirements."
//
//	go install github.com/katalvlaran/searchadvisor/cmd/searchadvisor@latest
package searchadvisor
