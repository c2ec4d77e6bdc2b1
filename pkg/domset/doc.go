// Package domset finds small dominating sets of undirected graphs by
// anytime local search.
//
// A dominating set D of a graph contains, for every vertex v, either v itself
// or a neighbor of v. The [Solver] holds such a set at every round boundary
// and keeps shrinking it until it is asked to stop; it then rolls back to the
// smallest set it has seen, verifies it and returns it. There is no quality
// guarantee beyond "dominating" and "never larger than the initial set".
//
// # Pipeline
//
//  1. [Reduce] marks vertices that never need to be selected: v is dropped
//     when a neighbor i with degree(v) <= degree(i) has a closed
//     neighborhood containing v's, since i can replace v in any solution.
//  2. The solver selects every remaining (eligible) vertex.
//  3. Each round removes redundant vertices, records a new best when the set
//     did not grow, rolls back after [Options.ResetPatience] non-improving
//     rounds, and re-adds a random batch of eligible vertices whose size is
//     steered by an adaptive divisor.
//  4. On stop the solver replays its undo log back to the best state and
//     verifies domination before extracting the vertex list.
//
// # Domination Counters
//
// For every vertex u the solver tracks how many selected vertices lie in
// u's closed neighborhood and the sum of their ids; while the count is 1 the
// sum is the id of u's only dominator. For every selected vertex v it tracks
// how many members of N[v] are dominated exactly once (its load). A selected
// vertex with load zero can be removed without breaking domination. All
// three counters are maintained incrementally in O(degree) per change.
//
// # Stopping
//
// A [Stopper] is the only thing shared with other goroutines. Stop may be
// called at any time, any number of times; the solver reads it once at the
// start of every round and never stops mid-round. Stopping before Run
// yields the initial set.
//
//	s, err := domset.New(g, domset.Options{Seed: 1})
//	if err != nil {
//	    return err
//	}
//	go func() {
//	    <-time.After(10 * time.Second)
//	    s.Stopper().Stop()
//	}()
//	res, err := s.Run(ctx)
//
// A Solver is not safe for concurrent use; run independent solvers for
// parallel search.
package domset
