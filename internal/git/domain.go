package git

const (
	DefaultBranch = "main"
	RemoteName    = "origin"

	placeholderFile = ".gitkeep"
	initialMessage  = "chore: initial commit"
)

// State is a stage of the working copy lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateCloned        State = "cloned"      // cloned from the remote
	StateInitialized   State = "initialized" // created locally with origin registered
	StateOpened        State = "opened"      // reused from a previous run
	StateBranchReady   State = "branch_ready"
)

// Handle identifies the working copy shared by the process.
type Handle struct {
	Path   string
	Branch string
	// Source tells how the working copy was obtained on the last Ensure.
	Source State
	State  State
	// Head is the commit hash the branch points to, empty for an unborn branch.
	Head string
}

// CommitResult describes a commit created through a Session.
type CommitResult struct {
	Hash    string
	Message string
}
