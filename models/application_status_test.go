package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatus(t *testing.T) {
	t.Run(`transition table`, func(t *testing.T) {
		cases := []struct {
			from, to ApplicationStatus
			allowed  bool
		}{
			{ApplicationStatusApplied, ApplicationStatusScreening, true},
			{ApplicationStatusApplied, ApplicationStatusInterview, false},
			{ApplicationStatusApplied, ApplicationStatusOffered, false},
			{ApplicationStatusApplied, ApplicationStatusRejected, true},
			{ApplicationStatusScreening, ApplicationStatusInterview, true},
			{ApplicationStatusScreening, ApplicationStatusApplied, false},
			{ApplicationStatusTestInvited, ApplicationStatusScreening, true},
			{ApplicationStatusTestCompleted, ApplicationStatusInterview, true},
			{ApplicationStatusTestCompleted, ApplicationStatusOffered, false},
			{ApplicationStatusInterview, ApplicationStatusOffered, true},
			{ApplicationStatusInterviewR2, ApplicationStatusOffered, true},
			{ApplicationStatusInterviewR1, ApplicationStatusInterviewR2, true},
			{ApplicationStatusInterview, ApplicationStatusAccepted, false},
			{ApplicationStatusOffered, ApplicationStatusAccepted, true},
			{ApplicationStatusOffered, ApplicationStatusWithdrawn, true},
			{ApplicationStatusAccepted, ApplicationStatusRejected, false},
			{ApplicationStatusRejected, ApplicationStatusScreening, false},
			{ApplicationStatusWithdrawn, ApplicationStatusApplied, false},
		}
		for _, c := range cases {
			require.Equal(t, c.allowed, c.from.IsAllowChange(c.to), "%v -> %v", c.from, c.to)
		}
	})

	t.Run(`phases and terminal`, func(t *testing.T) {
		require.Equal(t, ApplicationStatusScreening, ApplicationStatusTestCompleted.Phase())
		require.Equal(t, ApplicationStatusInterview, ApplicationStatusInterviewR2.Phase())
		require.Equal(t, ApplicationStatusOffered, ApplicationStatusOffered.Phase())
		require.True(t, ApplicationStatusTestInvited.IsSubStatus())
		require.False(t, ApplicationStatusInterview.IsSubStatus())

		for _, status := range []ApplicationStatus{ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn} {
			require.True(t, status.IsTerminal())
			require.False(t, status.CanWithdraw())
			require.Empty(t, status.AllowedTransitions())
		}
		require.True(t, ApplicationStatusOffered.CanWithdraw())
		require.True(t, ApplicationStatusInterviewR1.CanWithdraw())
	})

	t.Run(`forward check`, func(t *testing.T) {
		require.True(t, ApplicationStatusApplied.IsForwardOrSame(ApplicationStatusInterviewR1))
		require.True(t, ApplicationStatusTestInvited.IsForwardOrSame(ApplicationStatusTestCompleted))
		require.True(t, ApplicationStatusTestCompleted.IsForwardOrSame(ApplicationStatusTestInvited))
		require.False(t, ApplicationStatusInterviewR1.IsForwardOrSame(ApplicationStatusTestCompleted))
		require.False(t, ApplicationStatusRejected.IsForwardOrSame(ApplicationStatusInterviewR1))
	})

	t.Run(`round status`, func(t *testing.T) {
		require.Equal(t, ApplicationStatusInterviewR1, InterviewRoundStatus(0))
		require.Equal(t, ApplicationStatusInterviewR1, InterviewRoundStatus(1))
		require.Equal(t, ApplicationStatusInterviewR2, InterviewRoundStatus(3))
	})

	t.Run(`validate`, func(t *testing.T) {
		require.NoError(t, ApplicationStatusTestInvited.Validate())
		require.Error(t, ApplicationStatus("HIRED").Validate())
	})
}

func TestCapabilities(t *testing.T) {
	t.Run(`parse skips unknown`, func(t *testing.T) {
		caps := ParseCapabilities([]string{"recruiter", "superuser", "manager"})
		require.Equal(t, Capabilities{CapabilityRecruiter, CapabilityManager}, caps)
	})

	t.Run(`capability groups`, func(t *testing.T) {
		applicant := Capabilities{CapabilityApplicant}
		require.False(t, applicant.IsStaff())
		require.False(t, applicant.CanManagePipeline())

		manager := Capabilities{CapabilityManager}
		require.True(t, manager.CanOrganizeInterview())
		require.True(t, manager.CanInterview())
		require.False(t, manager.CanManagePipeline())

		interviewer := Capabilities{CapabilityInterviewer}
		require.True(t, interviewer.IsStaff())
		require.False(t, interviewer.CanOrganizeInterview())
	})
}
