package services

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/go-faster/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const UsersCollection = "users"

func UserExists(ctx context.Context, firestoreClient *firestore.Client, email string) (bool, error) {
	usersCollection := firestoreClient.Collection(UsersCollection)
	query := usersCollection.Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return false, errors.Wrap(ErrExternal, err.Error())
	}
	return len(docs) > 0, nil
}

func GetUserByEmail(ctx context.Context, firestoreClient *firestore.Client, email string) (*firestore.DocumentSnapshot, error) {
	usersCollection := firestoreClient.Collection(UsersCollection)
	query := usersCollection.Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(ErrExternal, err.Error())
	}
	if len(docs) == 0 {
		return nil, errors.Wrap(ErrNotFound, "user not found")
	}
	return docs[0], nil
}

func GetUserByID(ctx context.Context, firestoreClient *firestore.Client, uid string) (*firestore.DocumentSnapshot, error) {
	doc, err := firestoreClient.Collection(UsersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.Wrap(ErrNotFound, "user not found")
		}
		return nil, errors.Wrap(ErrExternal, err.Error())
	}
	return doc, nil
}

// GetUserByUsername looks a profile up by its normalized username projection.
func GetUserByUsername(ctx context.Context, firestoreClient *firestore.Client, normalized string) (*firestore.DocumentSnapshot, error) {
	usersCollection := firestoreClient.Collection(UsersCollection)
	query := usersCollection.Where("usernameLower", "==", normalized).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(ErrExternal, err.Error())
	}
	if len(docs) == 0 {
		return nil, errors.Wrap(ErrNotFound, "user not found")
	}
	return docs[0], nil
}
