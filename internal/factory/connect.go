package factory

import (
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
)

// connectQueue holds ports and pipes waiting to be linked to their
// neighbors. At most limit jobs run per frame, so two pieces placed together
// are linked in separate frames and always see each other's settled state.
type connectQueue struct {
	limit int
	jobs  []ecs.Entity
}

func (q *connectQueue) push(ent ecs.Entity) {
	for _, job := range q.jobs {
		if job == ent {
			return
		}
	}
	q.jobs = append(q.jobs, ent)
}

func (q *connectQueue) pop() (ecs.Entity, bool) {
	for len(q.jobs) > 0 {
		ent := q.jobs[0]
		q.jobs[0] = ecs.NilEntity
		q.jobs = q.jobs[1:]
		if ent.Alive() {
			return ent, true
		}
	}
	return ecs.NilEntity, false
}

func (q *connectQueue) pending() int {
	n := 0
	for _, job := range q.jobs {
		if job.Alive() {
			n++
		}
	}
	return n
}

func (q *connectQueue) reset() { q.jobs = nil }

// PendingConnections returns how many live connection jobs are queued.
func (f *Factory) PendingConnections() int { return f.queue.pending() }

func (f *Factory) connectPending() {
	for i := 0; i < f.queue.limit; i++ {
		ent, ok := f.queue.pop()
		if !ok {
			return
		}
		var linked bool
		switch t := ent.Type(); {
		case t.HasAll(fcPort):
			linked = f.connectPort(ent)
		case t.HasAll(fcPipe):
			linked = f.connectPipe(ent)
		}
		if linked {
			pos, _ := f.portOrPipePos(ent)
			f.invalidate(pos)
		}
	}
}

func (f *Factory) logLink(from, to ecs.Entity) {
	f.logf("link %v -> %v", from, to)
}

// connectPort links an unconnected port to the first compatible neighbor
// facing it: the opposite-flow port of an adjacent machine, or the matching
// free slot of an adjacent pipe.
func (f *Factory) connectPort(ent ecs.Entity) bool {
	p := &f.ports[ent.ID()]
	if p.Connected.Alive() {
		return false
	}
	pos, ok := f.pos.Get(p.Parent)
	if !ok {
		return false
	}
	nbr, ok := f.grid.Building(pos.Add(p.Side.Vec()))
	if !ok {
		return false
	}
	switch t := nbr.Type(); {
	case t.HasAll(fcMachine):
		for _, npe := range f.machines[nbr.ID()].ports {
			np := &f.ports[npe.ID()]
			if np.Side == p.Side.Flip() && np.Flow != p.Flow && !np.Connected.Alive() {
				p.Connected, np.Connected = npe, ent
				f.logLink(ent, npe)
				return true
			}
		}
	case t.HasAll(fcPipe):
		pp := &f.pipes[nbr.ID()]
		if p.Flow == Inlet && !pp.To.Alive() {
			pp.To, p.Connected = ent, nbr
			f.logLink(nbr, ent)
			return true
		} else if p.Flow == Outlet && !pp.From.Alive() {
			pp.From, p.Connected = ent, nbr
			f.logLink(ent, nbr)
			return true
		}
	}
	return false
}

// connectPipe scans all four neighbors of a pipe, linking it to facing ports
// and to neighboring pipes with free slots.
func (f *Factory) connectPipe(ent ecs.Entity) bool {
	pos, ok := f.pos.Get(ent)
	if !ok {
		return false
	}
	linked := false
	for _, dir := range Directions {
		nbr, ok := f.grid.Building(pos.Add(dir.Vec()))
		if !ok || nbr == ent {
			continue
		}
		pp := &f.pipes[ent.ID()]
		switch t := nbr.Type(); {
		case t.HasAll(fcMachine):
			for _, npe := range f.machines[nbr.ID()].ports {
				np := &f.ports[npe.ID()]
				if np.Side != dir.Flip() || np.Connected.Alive() {
					continue
				}
				if np.Flow == Inlet && !pp.To.Alive() {
					pp.To, np.Connected = npe, ent
					f.logLink(ent, npe)
					linked = true
				} else if np.Flow == Outlet && !pp.From.Alive() {
					pp.From, np.Connected = npe, ent
					f.logLink(npe, ent)
					linked = true
				}
				break
			}

		case t.HasAll(fcPipe):
			np := &f.pipes[nbr.ID()]
			if pp.To == nbr || pp.From == nbr {
				continue
			}
			if !pp.To.Alive() && !np.From.Alive() {
				pp.To, np.From = nbr, ent
				f.logLink(ent, nbr)
				linked = true
			} else if !pp.From.Alive() && !np.To.Alive() {
				pp.From, np.To = nbr, ent
				f.logLink(nbr, ent)
				linked = true
			}
		}
	}
	return linked
}

func (f *Factory) portOrPipePos(ent ecs.Entity) (image.Point, bool) {
	if ent.Type().HasAll(fcPort) {
		return f.pos.Get(f.ports[ent.ID()].Parent)
	}
	return f.pos.Get(ent)
}
