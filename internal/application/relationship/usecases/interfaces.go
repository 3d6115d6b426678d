package usecases

import "context"

type FollowUserExecutor interface {
	Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error)
}

type UnfollowUserExecutor interface {
	Execute(ctx context.Context, cmd UnfollowUserCommand) (*UnfollowUserResult, error)
}

type BlockUserExecutor interface {
	Execute(ctx context.Context, cmd BlockUserCommand) (*BlockUserResult, error)
}

type UnblockUserExecutor interface {
	Execute(ctx context.Context, cmd UnblockUserCommand) (*UnblockUserResult, error)
}

type ListRelationshipsExecutor interface {
	Execute(ctx context.Context, query ListRelationshipsQuery) (*ListRelationshipsResult, error)
}
