package main

/*

# Abstract

Space|Time is a factory game on a small square grid. Resources arrive through
fixed inlets on the border, flow along pipes into machines, and the machines
turn them into ammo, rockets, and hull repairs for a ship flying through
space. Everything the factory does is paid for in time: each machine tick
burns a second of the time resource, and when time runs out the factory
stops.

# Playing

The cursor moves with the vi keys; with shift they move three tiles. Lay
pipes with p, buy machines with 1-4, remove with x, and turn a pipe switch
with space. R restarts and Q quits; ? shows the key help.

The space feed ticks along on its own, picking up minerals, gas, and spare
time, and throwing threats at the ship: rockets shoot them down, ammo only
softens the blow, and with neither the hull takes the hit. The game is over
when the hull is gone.

# Technicals

The grid is drawn Y-up: row 0 of the factory is the bottom line of the view.
Pipes draw with the links they actually have, so a half-connected run shows
up as a stub while the connection queue works through it, one link per frame.

*/
