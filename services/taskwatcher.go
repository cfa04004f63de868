package services

import (
	"context"
	"mysteriogame/model"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const TasksCollection = "tasks"

// WatchTasks streams full snapshots of the task collection to onChange until
// the returned stop function is called or ctx is cancelled. After stop returns
// no further callbacks are delivered.
func WatchTasks(ctx context.Context, firestoreClient *firestore.Client, log *zap.Logger, onChange func([]model.Task)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		snapshots := firestoreClient.Collection(TasksCollection).Snapshots(ctx)
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Error("task snapshot stream failed", zap.Error(err))
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				log.Error("task snapshot read failed", zap.Error(err))
				continue
			}
			tasks := make([]model.Task, 0, len(docs))
			for _, doc := range docs {
				var task model.Task
				if err := doc.DataTo(&task); err != nil {
					log.Error("task snapshot parse failed", zap.String("doc", doc.Ref.ID), zap.Error(err))
					continue
				}
				if task.TaskID == "" {
					task.TaskID = doc.Ref.ID
				}
				tasks = append(tasks, task)
			}
			if ctx.Err() != nil {
				return
			}
			onChange(tasks)
		}
	}()
	return cancel
}
