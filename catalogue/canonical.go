package catalogue

// Names of the canonical algorithms.
const (
	BreadthFirst       = "Breadth-first search"
	DepthFirst         = "Depth-first search"
	DepthLimited       = "Depth-limited search"
	IterativeDeepening = "Iterative deepening search"
)

const (
	timeLinear     = "O(|V| + |E|)  (V: Number of search nodes, E: Number of edges)"
	spaceFrontier  = "O(b^d)    (b: Branching factor, d: Solution depth )"
	spaceDepthPath = "O(b * h)    (b: Branching factor, h: Maximum depth explored )"
)

const bfsDescription = "The breadth-first search algorithm explores a graph by searching all nodes at its current depth level " +
	"before exploring any nodes at subsequent depths (starting from the search tree's root). \n\n" +
	"Strengths: Breadth-first search is well-suited to finding solutions that are close to the search tree root, " +
	"and the first solution found is guaranteed to have the shortest path length of any solution." +
	"\nWeaknesses: Breadth-first search may not be able to find solutions deep within a search tree if the branching factor is high. " +
	"Space complexity is higher than other uninformed search algorithms."

const dfsDescription = "Depth-first search explores a graph by exploring paths as deeply as possible before backtracking and considering other paths." +
	"\n\nStrengths: Depth-first search is well-suited problems which contain multiple solutions deep within a search tree. " +
	"Less space requirements than breadth-first search " +
	"\nWeaknesses: Solutions found may not be optimal in terms of length. Infinite paths may cause the algorithm to never terminate. " +
	"Depth-first search may miss solutions very near the search tree's root while exploring deep within the tree."

const dlsDescription = "Depth-limited search explores a graph by exploring paths as deeply as possible up to a fixed depth before backtracking and considering other paths." +
	"\n\nStrengths: Unlike depth-first search, depth-limited search will never get stuck following infinite-length paths. " +
	"Depth-first search is well-suited problems which contain multiple solutions at or just before its depth limit. " +
	"Less space requirements than breadth-first search. " +
	"\nWeaknesses: Solutions found may not be optimal in terms of length. " +
	"Depth-limited search will never find a solution that exceeds its maximum depth limit. " +
	"Depth-first search may miss solutions very near the search tree's root while exploring deep within the tree."

const idsDescription = "Iterative deepening search explores a graph by performing a depth-first search up to a fixed depth " +
	"(i.e., exploring paths as deeply as possible up to a fixed depth before backtracking). " +
	"If a solution is not found, the depth limit is increased and the search is restarted. " +
	"\n\nStrengths: If the initial depth limit and depth increment are both set to 1, " +
	"then found solutions are guaranteed to be optimal in terms of path length. " +
	"Less space requirements than breadth-first search " +
	"\nWeaknesses: Many of the same node explorations are repeated each time the search restarts with a higher depth limit.  " +
	"If branching factor is high, may take a long time before searching deep within the tree."

// canonical returns a fresh copy of the four canonical records in
// declaration order.
func canonical() []Algorithm {
	return []Algorithm{
		{
			Name:                 BreadthFirst,
			LengthOptimality:     LengthGuaranteed,
			CostOptimality:       CostNotGuaranteed,
			HeuristicRequired:    false,
			HandlesInfinitePaths: true,
			Description:          bfsDescription,
			TimeComplexity:       timeLinear,
			SpaceComplexity:      spaceFrontier,
		},
		{
			Name:                 DepthFirst,
			LengthOptimality:     LengthNotGuaranteed,
			CostOptimality:       CostNotGuaranteed,
			HeuristicRequired:    false,
			HandlesInfinitePaths: false,
			Description:          dfsDescription,
			TimeComplexity:       timeLinear,
			SpaceComplexity:      spaceDepthPath,
		},
		{
			Name:                 DepthLimited,
			LengthOptimality:     LengthNotGuaranteed,
			CostOptimality:       CostNotGuaranteed,
			HeuristicRequired:    false,
			HandlesInfinitePaths: true,
			Description:          dlsDescription,
			TimeComplexity:       timeLinear,
			SpaceComplexity:      spaceDepthPath,
		},
		{
			Name:                 IterativeDeepening,
			LengthOptimality:     LengthTunable,
			CostOptimality:       CostNotGuaranteed,
			HeuristicRequired:    false,
			HandlesInfinitePaths: true,
			Description:          idsDescription,
			TimeComplexity:       timeLinear,
			SpaceComplexity:      spaceDepthPath,
		},
	}
}
