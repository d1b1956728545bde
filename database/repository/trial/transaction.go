package trialRepo

import (
	"context"
	"fmt"
	"time"

	"coursebot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithUser inserts the user profile and the trial lesson inside one
// Mongo transaction so a failed trial insert can never leave an orphan user.
func (r *MongoTrialRepo) CreateWithUser(ctx context.Context, user *models.User, trial *models.TrialLesson) error {
	client := r.trialColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		user.CreatedAt = time.Now()
		if _, err := r.userColl.InsertOne(sc, user); err != nil {
			return fmt.Errorf("insert user failed: %w", err)
		}
		trial.UserID = user.ID
		if _, err := r.trialColl.InsertOne(sc, trial); err != nil {
			return fmt.Errorf("insert trial lesson failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
