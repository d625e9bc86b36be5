package testutil

// HelloSpec is a minimal package with two sources, a %prep setup line and
// one changelog entry.
const HelloSpec = `Name:    hello
Version: 1.0
Release: 3%{?dist}
Summary: Says hello

Source0: hello-1.0.tar.gz
Source1: hello.conf

%description
Says hello.

%prep
%setup -q

%changelog
* Mon Jan 01 2024 Jane Doe <jane@example.com> - 1.0-3
- Rebuilt
`

// PatchedSpec declares patches up to Patch0007, one of them only on arm.
const PatchedSpec = `Name:    patched
Version: 2.4
Release: 1%{?dist}

Source0: patched-2.4.tar.gz

# Fix the build
Patch0001: 0001-fix-build.patch
%ifarch aarch64
Patch0007: 0007-arm.patch
%endif

%prep
%autosetup -p1

%changelog
`

// GitPatch returns a git format-patch header with the given subject.
func GitPatch(subject string) string {
	return "From 1a2b3c Mon Sep 17 00:00:00 2001\n" +
		"From: Jane Doe <jane@example.com>\n" +
		"Subject: [PATCH] " + subject + "\n" +
		"\n---\n"
}
