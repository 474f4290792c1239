// pkg/grid/pathfinding.go
package grid

import (
	"container/heap"
)

// AStar ищет кратчайший проходимый путь от start до goal включительно.
// Возвращает nil, если цель недостижима.
func AStar(start, goal Cell, g *Grid) []Cell {
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Cell: start, Cost: 0, Parent: nil})
	costSoFar := map[Cell]int{start: 0}
	seq := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Cell == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range g.Neighbors(current.Cell) {
			if !g.IsPassable(neighbor) {
				continue
			}
			newCost := costSoFar[current.Cell] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				seq++
				priority := newCost + neighbor.Distance(goal)
				heap.Push(pq, &Node{Cell: neighbor, Cost: priority, Seq: seq, Parent: current})
			}
		}
	}
	return nil
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Cell   Cell
	Cost   int
	Seq    int // порядок вставки, равные приоритеты разбираются детерминированно
	Parent *Node
}

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Cell {
	path := []Cell{}
	for node != nil {
		path = append([]Cell{node.Cell}, path...)
		node = node.Parent
	}
	return path
}
