/*
Package time provides frame and tick bookkeeping for an ecs.System.

Frame time counts Process()ing rounds, while Duration measures simulated
seconds. A Timer turns a stream of consumed Durations into a count of whole
periods elapsed, carrying any remainder over to the next frame.
*/
package time
