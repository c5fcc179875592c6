// Package service holds the business logic of both binaries.
//
// Server side: [AuthService] registers users and issues JWTs, [NoteService]
// serves the remote replica with owner checks, [AppInfoService] reports the
// build version.
//
// Client side: the note synchronization engine. [SyncPlanner] turns two
// snapshots of the same owner's notes into a [models.SyncPlan];
// [ClientSyncService] fetches both replicas through [NoteGateway]s, plans,
// applies every action and reports a [models.SyncResult] listing every
// failure; [ClientSyncJob] repeats passes on a ticker.
//
// Deletion is not reconciled. The engine never deletes a note, so a note
// removed from one replica is recreated from the other on the next pass.
package service
